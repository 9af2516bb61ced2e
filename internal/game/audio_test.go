package game

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A disabled or nil manager must be callable without an audio device.
func TestAudioManagerDisabled(t *testing.T) {
	am := NewAudioManager(false)
	am.PlayEat()
	am.PlayCrash()

	var nilManager *AudioManager
	nilManager.PlayEat()
	nilManager.PlayCrash()
}

func TestSynthBeepWAVHeader(t *testing.T) {
	buf := synthBeepWAV(8000, 100, 440)
	require.Len(t, buf, 44+800*2)

	assert.Equal(t, "RIFF", string(buf[0:4]))
	assert.Equal(t, "WAVE", string(buf[8:12]))
	assert.Equal(t, "data", string(buf[36:40]))
	assert.Equal(t, uint32(len(buf)-8), binary.LittleEndian.Uint32(buf[4:8]))
	assert.Equal(t, uint32(8000), binary.LittleEndian.Uint32(buf[24:28]))
	assert.Equal(t, uint32(1600), binary.LittleEndian.Uint32(buf[40:44]))
}
