package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobvolley/systems"
)

// audioBank owns the sound effects and the per-state music streams.
// Missing resource files load as empty handles and play as no-ops.
type audioBank struct {
	bounce   rl.Sound
	score    rl.Sound
	gameOver rl.Sound

	menuMusic    rl.Music
	creditsMusic rl.Music
}

func newAudioBank() *audioBank {
	rl.InitAudioDevice()

	b := &audioBank{
		bounce:   rl.LoadSound("resources/bounce.wav"),
		score:    rl.LoadSound("resources/score.wav"),
		gameOver: rl.LoadSound("resources/gameover.wav"),

		menuMusic:    rl.LoadMusicStream("resources/hymn_to_aurora.mod"),
		creditsMusic: rl.LoadMusicStream("resources/space_debris.mod"),
	}
	rl.SetMusicVolume(b.menuMusic, 0.5)
	rl.SetMusicVolume(b.creditsMusic, 0.5)
	return b
}

// play fires the sound for each drained event. Jump events are accepted
// but currently silent. TODO: record a jump sample that doesn't clash
// with the bounce.
func (b *audioBank) play(events []systems.Event) {
	for _, ev := range events {
		switch ev.Type {
		case systems.EventBounce:
			rl.PlaySound(b.bounce)
		case systems.EventScore:
			rl.PlaySound(b.score)
		case systems.EventGameOver:
			rl.PlaySound(b.gameOver)
		}
	}
}

// updateMusic streams the track matching the current state and stops the
// others.
func (b *audioBank) updateMusic(state systems.State) {
	rl.UpdateMusicStream(b.menuMusic)
	rl.UpdateMusicStream(b.creditsMusic)

	switch state {
	case systems.StateMenu:
		if !rl.IsMusicStreamPlaying(b.menuMusic) {
			rl.PlayMusicStream(b.menuMusic)
		}
		if rl.IsMusicStreamPlaying(b.creditsMusic) {
			rl.StopMusicStream(b.creditsMusic)
		}
	case systems.StateCredits:
		if !rl.IsMusicStreamPlaying(b.creditsMusic) {
			rl.PlayMusicStream(b.creditsMusic)
		}
		if rl.IsMusicStreamPlaying(b.menuMusic) {
			rl.StopMusicStream(b.menuMusic)
		}
	default:
		if rl.IsMusicStreamPlaying(b.menuMusic) {
			rl.StopMusicStream(b.menuMusic)
		}
		if rl.IsMusicStreamPlaying(b.creditsMusic) {
			rl.StopMusicStream(b.creditsMusic)
		}
	}
}

func (b *audioBank) unload() {
	rl.UnloadSound(b.bounce)
	rl.UnloadSound(b.score)
	rl.UnloadSound(b.gameOver)
	rl.UnloadMusicStream(b.menuMusic)
	rl.UnloadMusicStream(b.creditsMusic)
	rl.CloseAudioDevice()
}
