package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid WAV file
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates an unsupported WAV layout
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrOnlyPCMSupported indicates a non-PCM encoding such as IEEE float
	ErrOnlyPCMSupported = errors.New("only PCM WAV is supported")

	// ErrUnsupportedBitDepth indicates a bit depth other than 8/16/24/32
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
