// ABOUTME: Chime rendering package
// ABOUTME: Declarative recipes and the synthesis pipeline that renders them
// Package chime renders percussive chime sounds from declarative recipes.
//
// A Recipe lists notes, each with its own oscillator layers, plus the
// envelope, echo and normalization settings shared by the whole sound.
// Render runs the fixed pipeline:
//
//	oscillator → envelope → mixer → echo → normalizer
//
// and returns a mono buffer ready for package encode.
//
// Example:
//
//	recipe := chime.PaymentSuccess()
//	samples, err := chime.Render(recipe, 48000)
//	err = encode.WriteFile("assets/sounds/payment_success.wav", samples, audio.DefaultFormat(), nil)
package chime
