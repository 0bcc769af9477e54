package weather

// #region imports
import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// #endregion imports

// Frame versions. Version 2 is the base record; version 3 added the
// forecast list. Writers emit the current version; readers accept any
// version >= 2 and skip fields they do not understand.
const (
	versionBase      = 2
	versionForecasts = 3
	currentVersion   = versionForecasts
)

const headerSize = 8 // version + size, both int32

var errShortBuffer = fmt.Errorf("weather: short buffer")

// #region encode

// Encode serializes info as a self-sized little-endian frame:
// [version:int32][size:int32][payload]. size covers the whole frame
// including the header, so a reader can skip records it cannot parse.
func Encode(info Info) []byte {
	var payload bytes.Buffer
	writeString(&payload, info.CityID)
	writeString(&payload, info.City)
	writeString(&payload, info.Condition)
	writeInt32(&payload, int32(info.ConditionCode))
	writeFloat(&payload, info.Temperature)
	writeInt32(&payload, int32(info.TemperatureUnit))
	writeFloat(&payload, info.Humidity)
	writeFloat(&payload, info.Wind)
	writeFloat(&payload, info.WindDirection)
	writeInt32(&payload, int32(info.WindUnit))
	writeInt64(&payload, info.UpdatedAt.UnixMilli())

	writeInt32(&payload, int32(len(info.Forecasts)))
	for _, f := range info.Forecasts {
		encodeForecast(&payload, f)
	}

	var out bytes.Buffer
	writeInt32(&out, currentVersion)
	writeInt32(&out, int32(headerSize+payload.Len()))
	out.Write(payload.Bytes())
	return out.Bytes()
}

// encodeForecast writes one forecast as its own framed sub-record.
func encodeForecast(w *bytes.Buffer, f DayForecast) {
	var payload bytes.Buffer
	writeFloat(&payload, f.Low)
	writeFloat(&payload, f.High)
	writeString(&payload, f.Condition)
	writeInt32(&payload, int32(f.ConditionCode))

	writeInt32(w, currentVersion)
	writeInt32(w, int32(headerSize+payload.Len()))
	w.Write(payload.Bytes())
}

// #endregion encode

// #region decode

// Decode parses one frame from the front of buf and returns the record
// plus the remaining bytes. Frames written by a newer version decode
// the fields known here; the unknown tail is skipped via the size
// header, so mixed-version streams stay walkable.
func Decode(buf []byte) (Info, []byte, error) {
	var info Info
	if len(buf) < headerSize {
		return info, nil, errShortBuffer
	}
	version := int(int32(binary.LittleEndian.Uint32(buf)))
	size := int(int32(binary.LittleEndian.Uint32(buf[4:])))
	if version < versionBase {
		return info, nil, fmt.Errorf("weather: unsupported record version %d", version)
	}
	if size < headerSize || size > len(buf) {
		return info, nil, fmt.Errorf("weather: frame size %d out of range", size)
	}

	r := &reader{buf: buf[headerSize:size]}
	info.CityID = r.string()
	info.City = r.string()
	info.Condition = r.string()
	info.ConditionCode = int(r.int32())
	info.Temperature = r.float()
	info.TemperatureUnit = int(r.int32())
	info.Humidity = r.float()
	info.Wind = r.float()
	info.WindDirection = r.float()
	info.WindUnit = int(r.int32())
	info.UpdatedAt = time.UnixMilli(r.int64())

	if version >= versionForecasts {
		n := int(r.int32())
		for i := 0; i < n && r.err == nil; i++ {
			f, ferr := decodeForecast(r)
			if ferr != nil {
				return info, nil, ferr
			}
			info.Forecasts = append(info.Forecasts, f)
		}
	}
	if r.err != nil {
		return info, nil, fmt.Errorf("weather: truncated record: %w", r.err)
	}
	return info, buf[size:], nil
}

// decodeForecast reads one framed sub-record, honoring its own size
// header so extra fields from newer writers are skipped.
func decodeForecast(r *reader) (DayForecast, error) {
	var f DayForecast
	version := int(r.int32())
	size := int(r.int32())
	if r.err != nil {
		return f, fmt.Errorf("weather: truncated forecast: %w", r.err)
	}
	if version < versionBase || size < headerSize || size-headerSize > len(r.buf) {
		return f, fmt.Errorf("weather: bad forecast frame (version=%d size=%d)", version, size)
	}
	sub := &reader{buf: r.buf[:size-headerSize]}
	f.Low = sub.float()
	f.High = sub.float()
	f.Condition = sub.string()
	f.ConditionCode = int(sub.int32())
	if sub.err != nil {
		return f, fmt.Errorf("weather: truncated forecast: %w", sub.err)
	}
	r.buf = r.buf[size-headerSize:]
	return f, nil
}

// #endregion decode

// #region wire-helpers

func writeInt32(w *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.Write(b[:])
}

func writeInt64(w *bytes.Buffer, v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	w.Write(b[:])
}

func writeFloat(w *bytes.Buffer, v float64) {
	writeInt32(w, int32(math.Float32bits(float32(v))))
}

func writeString(w *bytes.Buffer, s string) {
	writeInt32(w, int32(len(s)))
	w.WriteString(s)
}

// reader is a cursor over a payload slice. The first short read sets
// err and every later read returns a zero value.
type reader struct {
	buf []byte
	err error
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf) < n {
		r.err = errShortBuffer
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *reader) int32() int32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

func (r *reader) int64() int64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

func (r *reader) float() float64 {
	return float64(math.Float32frombits(uint32(r.int32())))
}

func (r *reader) string() string {
	n := r.int32()
	if n < 0 {
		r.err = errShortBuffer
		return ""
	}
	b := r.take(int(n))
	return string(b)
}

// #endregion wire-helpers
