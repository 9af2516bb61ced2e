//go:build !(js && wasm)

package highscore

// Open returns the durable store for this platform: files under dir, or
// under ConfigDir when dir is empty.
func Open(dir string) (KV, error) {
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return nil, err
		}
	}
	kv, err := NewFileKV(dir)
	if err != nil {
		return nil, err
	}
	return kv, nil
}
