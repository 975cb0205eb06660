package markupdoc

import "go.uber.org/zap"

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Image already displayed by the caller; matching images are dropped
	featuredImage string

	// Output shaping
	dropLooseText bool
	maxBlocks     int // 0 means unlimited

	logger *zap.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		featuredImage: "",
		dropLooseText: false,
		maxBlocks:     0,
		logger:        zap.NewNop(),
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		featuredImage: o.featuredImage,
		dropLooseText: o.dropLooseText,
		maxBlocks:     o.maxBlocks,
		logger:        o.logger,
	}
}
