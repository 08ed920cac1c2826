package storage

// TransferOptions tunes a single Put or Copy call
type TransferOptions struct {
	// Progress receives byte counts while the transfer runs
	Progress ProgressReporter

	// ContentType overrides content type detection on upload
	ContentType string
}

// TransferOption configures TransferOptions
type TransferOption func(*TransferOptions)

// WithProgress reports transfer progress to reporter
func WithProgress(reporter ProgressReporter) TransferOption {
	return func(opts *TransferOptions) {
		opts.Progress = reporter
	}
}

// WithContentType sets the content type of the uploaded object
func WithContentType(contentType string) TransferOption {
	return func(opts *TransferOptions) {
		opts.ContentType = contentType
	}
}

// ApplyTransferOptions folds opts into a TransferOptions value
func ApplyTransferOptions(opts ...TransferOption) TransferOptions {
	var o TransferOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
