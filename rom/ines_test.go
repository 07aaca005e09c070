package rom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildImage(t *testing.T, prgBanks, chrBanks byte, flag6, flag7 byte, trainer bool) []byte {
	t.Helper()
	header := []byte{'N', 'E', 'S', 0x1a, prgBanks, chrBanks, flag6, flag7, 0, 0, 0, 0, 0, 0, 0, 0}
	var buf bytes.Buffer
	buf.Write(header)
	if trainer {
		buf.Write(make([]byte, trainerLen))
	}
	buf.Write(bytes.Repeat([]byte{0xea}, int(prgBanks)*prgUnit))
	buf.Write(bytes.Repeat([]byte{0x00}, int(chrBanks)*chrUnit))
	return buf.Bytes()
}

func TestLoadValidImage(t *testing.T) {
	img := buildImage(t, 1, 1, 0x01, 0x00, false)
	r, err := Load(bytes.NewReader(img))
	assert.NoError(t, err)
	assert.Len(t, r.PRG, prgUnit)
	assert.Len(t, r.CHR, chrUnit)
	assert.Equal(t, MirrorVertical, r.Mirroring)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	img := buildImage(t, 1, 1, 0, 0, false)
	img[0] = 'X'
	_, err := Load(bytes.NewReader(img))
	assert.Error(t, err)
}

func TestLoadRejectsNES20(t *testing.T) {
	img := buildImage(t, 1, 1, 0, 0x08, false)
	_, err := Load(bytes.NewReader(img))
	assert.ErrorContains(t, err, "iNES 2.0")
}

func TestLoadHonorsTrainer(t *testing.T) {
	img := buildImage(t, 1, 0, 0x04, 0, true)
	r, err := Load(bytes.NewReader(img))
	assert.NoError(t, err)
	assert.Len(t, r.PRG, prgUnit)
	assert.Equal(t, byte(0xea), r.PRG[0], "PRG should start after the trainer, not inside it")
}

func TestLoadDerivesMapperFromBothFlagBytes(t *testing.T) {
	img := buildImage(t, 1, 1, 0x10, 0x10, false) // low nibble 1, high nibble 1 -> mapper 0x11
	r, err := Load(bytes.NewReader(img))
	assert.NoError(t, err)
	assert.Equal(t, byte(0x11), r.Mapper)
}

func TestLoadRejectsShortBody(t *testing.T) {
	img := buildImage(t, 2, 0, 0, 0, false)
	img = img[:len(img)-1]
	_, err := Load(bytes.NewReader(img))
	assert.Error(t, err)
}
