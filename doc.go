// Package knotanim is a sprite-atlas animation engine for [Ebitengine].
//
// Knotanim drives the frame-by-frame knot-tying animations of a knot
// reference application: it decodes packed sprite-sheet descriptors, slices
// the strip image into per-frame textures, derives playback rates from
// sequence length, and runs an interactive player with mirroring, discrete
// 90° rotation, and an alternate 360° turntable animation set.
//
// # Quick start
//
// Load a descriptor and its strip image through an [AssetProvider], then
// drive the player from your game loop:
//
//	provider := knotanim.NewFSProvider(assetsFS)
//	player := knotanim.NewPlayer(knotanim.PlayerConfig{
//		Provider: provider,
//		ViewW:    320,
//		ViewH:    320,
//	})
//	if err := player.LoadAnimation("bowline"); err != nil {
//		// show the "no animation available" placeholder
//	}
//
//	// each tick:
//	player.Update(dt)
//	tex, anchor := player.CurrentTexture()
//
// The player never blocks the render loop: descriptor decoding and texture
// slicing run on a background worker and the finished [AnimationSet] is
// published to the player only once it is complete.
//
// # Interaction
//
// Two discrete gestures act on the displayed node. [Player.ToggleMirror]
// flips the horizontal scale sign over a 0.75 s linear transition and
// [Player.Rotate] adds 90° counter-clockwise over a 1.0 s linear transition,
// both tweened via [gween]. [Player.Toggle360Mode] swaps between the
// step-by-step animation and the turntable set while carrying mirror and
// rotation state across the switch.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package knotanim
