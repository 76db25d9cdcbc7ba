// Package au decodes Sun/NeXT audio (.au) files into playback-ready PCM.
//
// The decoder normalizes everything in one pass: μ-law or 16-bit linear
// samples are converted to 16-bit little-endian stereo PCM at the requested
// sample rate, so the result can be handed to an audio.Player directly.
package au

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	auMagic       = 0x2e736e64 // ".snd" in big-endian
	encodingULaw  = 1          // 8-bit μ-law
	encodingPCM16 = 3          // 16-bit linear PCM (big-endian)
	headerSize    = 24
)

// unknownDataSize marks an .au header whose payload length field is unset;
// the payload then runs to the end of the file.
const unknownDataSize = 0xFFFFFFFF

// header is the fixed 24-byte .au file header (all fields big-endian).
type header struct {
	Magic      uint32
	DataOffset uint32
	DataSize   uint32
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

// μ-law 解压表(μ-law 字节 -> 16 位 PCM 样本)
var ulawToPCM = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// Stream is a decoded .au file: 16-bit little-endian stereo PCM at the
// sample rate requested from Decode. It implements io.ReadSeeker plus the
// Length method the audio player and loop wrappers expect.
type Stream struct {
	data   []byte
	offset int64
}

// Decode parses an .au file from r and converts it to 16-bit little-endian
// stereo PCM at the given sample rate. Mono sources are duplicated onto both
// channels; sample rates are converted by linear interpolation.
//
// Parameters:
//   - r: reader positioned at the start of the .au data
//   - sampleRate: target sample rate in Hz (the audio context rate)
//
// Returns:
//   - *Stream: playback-ready PCM stream
//   - error: header, encoding or payload problems
func Decode(r io.Reader, sampleRate int) (*Stream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid target sample rate: %d", sampleRate)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read au data: %w", err)
	}
	if len(raw) < headerSize {
		return nil, fmt.Errorf("au data too short: %d bytes (minimum %d)", len(raw), headerSize)
	}

	var h header
	if err := binary.Read(bytes.NewReader(raw), binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("failed to parse au header: %w", err)
	}
	if h.Magic != auMagic {
		return nil, fmt.Errorf("not an au file: magic 0x%08x (expected 0x%08x)", h.Magic, auMagic)
	}
	if h.Channels < 1 || h.Channels > 2 {
		return nil, fmt.Errorf("unsupported au channel count: %d (only 1-2 supported)", h.Channels)
	}
	if h.SampleRate == 0 {
		return nil, fmt.Errorf("au header declares zero sample rate")
	}

	dataOffset := int(h.DataOffset)
	if dataOffset < headerSize || dataOffset > len(raw) {
		return nil, fmt.Errorf("invalid au data offset: %d (file size %d)", dataOffset, len(raw))
	}
	payload := raw[dataOffset:]
	if h.DataSize != unknownDataSize && int(h.DataSize) < len(payload) {
		payload = payload[:h.DataSize]
	}

	var samples []int16
	switch h.Encoding {
	case encodingULaw:
		samples = make([]int16, len(payload))
		for i, b := range payload {
			samples[i] = ulawToPCM[b]
		}
	case encodingPCM16:
		count := len(payload) / 2
		samples = make([]int16, count)
		for i := 0; i < count; i++ {
			samples[i] = int16(uint16(payload[2*i])<<8 | uint16(payload[2*i+1]))
		}
	default:
		return nil, fmt.Errorf("unsupported au encoding: %d (μ-law=1, pcm16=3)", h.Encoding)
	}

	frames := toStereo(samples, int(h.Channels))
	frames = resampleLinear(frames, int(h.SampleRate), sampleRate)

	data := make([]byte, len(frames)*2)
	for i, s := range frames {
		data[2*i] = byte(s)
		data[2*i+1] = byte(s >> 8)
	}

	return &Stream{data: data}, nil
}

// toStereo 把按源声道数交错的样本展开为左右交错的立体声帧
// 单声道样本复制到两个声道;立体声去掉末尾不完整的帧后原样返回
func toStereo(samples []int16, channels int) []int16 {
	if channels == 2 {
		if len(samples)%2 != 0 {
			samples = samples[:len(samples)-1]
		}
		return samples
	}
	out := make([]int16, len(samples)*2)
	for i, s := range samples {
		out[2*i] = s
		out[2*i+1] = s
	}
	return out
}

// resampleLinear 用线性插值把立体声帧序列从 from 采样率转换到 to 采样率
func resampleLinear(frames []int16, from, to int) []int16 {
	if from == to || len(frames) == 0 {
		return frames
	}

	srcFrames := len(frames) / 2
	dstFrames := int(int64(srcFrames) * int64(to) / int64(from))
	if dstFrames == 0 {
		return nil
	}

	out := make([]int16, dstFrames*2)
	step := float64(from) / float64(to)
	for i := 0; i < dstFrames; i++ {
		pos := float64(i) * step
		idx := int(pos)
		frac := pos - float64(idx)
		next := idx + 1
		if next >= srcFrames {
			next = srcFrames - 1
		}
		for ch := 0; ch < 2; ch++ {
			a := float64(frames[idx*2+ch])
			b := float64(frames[next*2+ch])
			out[i*2+ch] = int16(a + (b-a)*frac)
		}
	}
	return out
}

// Read reads decoded PCM data into p. Implements io.Reader.
func (s *Stream) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read. Implements io.Seeker.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}
	s.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the decoded PCM data in bytes.
func (s *Stream) Length() int64 {
	return int64(len(s.data))
}
