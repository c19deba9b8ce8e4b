package effects

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/raster"
)

// layerCache is an LRU of composed layers. A nil cache is valid and
// caches nothing.
type layerCache struct {
	entries *lru.Cache[string, layers]
}

func newLayerCache(size int) *layerCache {
	if size <= 0 {
		return nil
	}
	entries, err := lru.New[string, layers](size)
	if err != nil {
		return nil
	}
	return &layerCache{entries: entries}
}

func (c *layerCache) get(key string) (layers, bool) {
	if c == nil {
		return layers{}, false
	}
	return c.entries.Get(key)
}

func (c *layerCache) add(key string, l layers) {
	if c == nil {
		return
	}
	c.entries.Add(key, l)
}

func (c *layerCache) purge() {
	if c == nil {
		return
	}
	c.entries.Purge()
}

func (c *layerCache) len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// layerKey identifies a composition by its inputs. The pixel digest makes
// the key change whenever the source content does.
func layerKey(shadows graphics.ShadowConfig, smooth bool, src *raster.Surface) string {
	pixels := sha256.Sum256(src.Image().Pix)
	return hashKey("layers", shadows, smooth, src.Bounds().Size(), hex.EncodeToString(pixels[:]))
}

func hashKey(parts ...any) string {
	data, _ := json.Marshal(parts)
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
