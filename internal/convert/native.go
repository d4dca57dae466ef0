package convert

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadTextureNative decodes a texture container and uploads it to the GPU.
func LoadTextureNative(path string) (*rl.Texture2D, error) {
	img, err := DecodeTextureFile(path)
	if err != nil {
		return nil, err
	}

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return &tex, nil
}
