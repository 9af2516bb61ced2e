//go:build js && wasm

package highscore

import (
	"errors"
	"fmt"
	"syscall/js"
)

// LocalStorage is window.localStorage.
type LocalStorage struct {
	v js.Value
}

func NewLocalStorage() (*LocalStorage, error) {
	v := js.Global().Get("localStorage")
	if v.IsUndefined() || v.IsNull() {
		return nil, errors.New("localStorage is not available")
	}
	return &LocalStorage{v: v}, nil
}

func (l *LocalStorage) Get(key string) (value string, ok bool, err error) {
	defer recoverJS(&err)
	item := l.v.Call("getItem", key)
	if item.IsNull() || item.IsUndefined() {
		return "", false, nil
	}
	return item.String(), true, nil
}

// Set may fail when storage is full or disabled by the browser.
func (l *LocalStorage) Set(key, value string) (err error) {
	defer recoverJS(&err)
	l.v.Call("setItem", key, value)
	return nil
}

func recoverJS(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("localStorage: %w", jsErr)
			return
		}
		panic(r)
	}
}

// Open returns window.localStorage. The browser has no directory, so dir is
// ignored.
func Open(dir string) (KV, error) {
	ls, err := NewLocalStorage()
	if err != nil {
		return nil, err
	}
	return ls, nil
}
