package dgshdetect

// Option configures a Detector constructed by New.
type Option func(*Detector)

// WithScanWindow caps how many leading bytes the script scanner examines.
// Values of zero or less keep DefaultScanWindow.
func WithScanWindow(n int) Option {
	return func(d *Detector) {
		d.ScanWindow = n
	}
}
