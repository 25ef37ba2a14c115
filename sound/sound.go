package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/golightsout/game"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	frequency float64
	duration  time.Duration
}

var (
	pressTones = []tone{{frequency: 880, duration: 40 * time.Millisecond}}
	winTones   = []tone{
		{frequency: 660, duration: 120 * time.Millisecond},
		{frequency: 990, duration: 240 * time.Millisecond},
	}
)

// Player plays short feedback tones. A Player whose speaker failed to
// initialise stays silent.
type Player struct {
	enabled bool
	log     logrus.FieldLogger
}

func NewPlayer(logger logrus.FieldLogger) *Player {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	player := &Player{log: logger.WithField("component", "sound")}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game can run without sound
		player.log.WithError(err).Warn("audio initialization failed")
		return player
	}
	player.enabled = true
	return player
}

// Attach plays a chime whenever board is won
func (player *Player) Attach(board *game.Board) {
	board.OnGameWon(func(game.GameResult) {
		player.Win()
	})
}

func (player *Player) Press() {
	player.play(pressTones)
}

func (player *Player) Win() {
	player.play(winTones)
}

func (player *Player) play(tones []tone) {
	if !player.enabled {
		return
	}

	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.frequency)
		if err != nil {
			player.log.WithError(err).Debug("cannot generate tone")
			return
		}
		streamers = append(streamers, beep.Take(sampleRate.N(t.duration), sine))
	}
	speaker.Play(beep.Seq(streamers...))
}

func (player *Player) Close() {
	if player.enabled {
		speaker.Close()
		player.enabled = false
	}
}
