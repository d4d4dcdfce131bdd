// ABOUTME: Deterministic asset identifiers
// ABOUTME: Name-based UUIDs derived from a recipe and its output format
package chime

import (
	"fmt"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
	"github.com/google/uuid"
)

// assetNamespace scopes asset IDs to this generator
var assetNamespace = uuid.MustParse("3b7c2d1e-8f4a-4c6b-9e5d-0a1f2b3c4d5e")

// AssetID returns a version 5 UUID identifying the rendered asset. The same
// recipe and format always produce the same ID.
func AssetID(r Recipe, format audio.Format) (uuid.UUID, error) {
	data, err := MarshalRecipe(r)
	if err != nil {
		return uuid.Nil, err
	}
	data = fmt.Appendf(data, "format: %s/%d/%d/%d\n", format.Codec, format.SampleRate, format.Channels, format.BitDepth)
	return uuid.NewSHA1(assetNamespace, data), nil
}
