package goban

import "fmt"

// AssetSource supplies optional textures by name: board background, stone
// variants, marker art. Lookups for names the source does not carry return
// an error wrapping ErrAssetUnavailable; the compositor recovers by falling
// back to solid-color rendering and reports the miss on the diagnostics
// callback, never by failing the render.
type AssetSource interface {
	Texture(name string) (Texture, error)
}

// StoneVariantName builds the conventional asset name for one texture
// variant of a stone, e.g. "stone-black-2".
func StoneVariantName(c StoneColor, variation int) string {
	return fmt.Sprintf("stone-%s-%d", c, variation)
}

// MapAssets is an AssetSource backed by a plain name->Texture map.
// Nil and missing entries report ErrAssetUnavailable.
type MapAssets map[string]Texture

func (m MapAssets) Texture(name string) (Texture, error) {
	if tex, ok := m[name]; ok && tex != nil {
		return tex, nil
	}
	return nil, fmt.Errorf("goban: texture %q: %w", name, ErrAssetUnavailable)
}
