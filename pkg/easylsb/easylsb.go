package easylsb

import (
	"errors"
	"fmt"
	"os"

	"github.com/bft-labs/easylsb/pkg/bitmap"
	"github.com/bft-labs/easylsb/pkg/log"
	"github.com/bft-labs/easylsb/pkg/lsb"
)

// EasyLSB encodes and decodes messages in image files.
// It holds no per-call state and may be reused.
type EasyLSB struct {
	cfg    Config
	format bitmap.Format
	logger log.Logger
}

// Capacity describes how much a carrier image can hold.
type Capacity struct {
	Width  int
	Height int
	// Bits is the channel-bit budget, length prefix included.
	Bits int
	// MaxBytes is the longest message that fits.
	MaxBytes int
}

// New creates an EasyLSB instance. It returns an error if the
// configuration is invalid.
func New(cfg Config, opts ...Option) (*EasyLSB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &EasyLSB{cfg: cfg, logger: o.logger}
	if cfg.Format != "" {
		// already checked by Validate
		e.format, _ = bitmap.ParseFormat(cfg.Format)
	}
	return e, nil
}

// Encode embeds msg into img in place.
func (e *EasyLSB) Encode(img *bitmap.Image, msg []byte) (lsb.Stats, error) {
	enc, err := lsb.NewEncoder(img, msg)
	if err != nil {
		return lsb.Stats{}, err
	}
	st := enc.Encode()
	e.logger.Debug("message embedded",
		log.Int("bytes", st.Length),
		log.Int("channels", st.Channels),
		log.Uint8("max_depth", st.MaxDepth),
	)
	return st, nil
}

// Decode extracts the message carried by img.
func (e *EasyLSB) Decode(img *bitmap.Image) ([]byte, lsb.Stats, error) {
	var opts []lsb.DecoderOption
	if e.cfg.Lenient {
		opts = append(opts, lsb.WithLenient())
	}
	dec, err := lsb.NewDecoder(img, opts...)
	if err != nil {
		return nil, lsb.Stats{}, err
	}
	msg, st, err := dec.Decode()
	if err != nil {
		return nil, st, err
	}
	e.logger.Debug("message extracted",
		log.Int("bytes", st.Length),
		log.Uint8("max_depth", st.MaxDepth),
		log.Stringer("phase", st.Phase),
	)
	return msg, st, nil
}

// EncodeFile embeds msg into the image at in and writes the result to out.
// Nothing is written unless the message fits. Without Force an existing
// out is never replaced, even one created while encoding.
func (e *EasyLSB) EncodeFile(msg []byte, in, out string) (lsb.Stats, error) {
	format := e.format
	if format == "" {
		f, err := bitmap.FormatFromPath(out)
		if err != nil {
			return lsb.Stats{}, err
		}
		format = f
	}

	img, err := bitmap.Load(in)
	if err != nil {
		return lsb.Stats{}, fmt.Errorf("load %s: %w", in, err)
	}

	st, err := e.Encode(img, msg)
	if err != nil {
		return st, err
	}

	save := bitmap.SaveAs
	if !e.cfg.Force {
		save = bitmap.CreateAs
	}
	if err := save(out, img, format); err != nil {
		if errors.Is(err, os.ErrExist) {
			return st, fmt.Errorf("%w: %s", ErrOutputExists, out)
		}
		return st, fmt.Errorf("save %s: %w", out, err)
	}
	e.logger.Info("encoded message",
		log.String("input", in),
		log.String("output", out),
		log.Int("bytes", st.Length),
		log.Uint8("max_depth", st.MaxDepth),
	)
	return st, nil
}

// DecodeFile extracts the message carried by the image at in.
func (e *EasyLSB) DecodeFile(in string) ([]byte, error) {
	img, err := bitmap.Load(in)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", in, err)
	}
	msg, st, err := e.Decode(img)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", in, err)
	}
	e.logger.Info("decoded message",
		log.String("input", in),
		log.Int("bytes", st.Length),
	)
	return msg, nil
}

// CapacityOf reports how much the image at in can carry.
func (e *EasyLSB) CapacityOf(in string) (Capacity, error) {
	img, err := bitmap.Load(in)
	if err != nil {
		return Capacity{}, fmt.Errorf("load %s: %w", in, err)
	}
	w, h := img.Width(), img.Height()
	return Capacity{
		Width:    w,
		Height:   h,
		Bits:     lsb.BitBudget(w, h),
		MaxBytes: lsb.MaxPayload(w, h),
	}, nil
}
