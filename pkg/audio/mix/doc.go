// ABOUTME: Track mixing package
// ABOUTME: Sums time-offset buffers into a fixed-length output
// Package mix combines time-offset sample buffers into one buffer.
//
// Overlapping tracks are summed without clipping; samples falling outside
// the output window are dropped.
//
// Example:
//
//	out := mix.Mix(48000, []mix.Track{
//	    {Samples: note1, Start: 0.00},
//	    {Samples: note2, Start: 0.07},
//	}, 1.2)
package mix
