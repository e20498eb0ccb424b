package view

// Option applies a configuration option to the Updater.
type Option func(*Updater)

// WithCumulativeMap makes RenderMap count only finals played up to the
// selected year. Off by default: the map then shows all-time counts and the
// year only changes the title.
func WithCumulativeMap(enabled bool) Option {
	return func(u *Updater) {
		u.cumulative = enabled
	}
}

// WithDefaultCountry sets the dropdown's initial selection.
func WithDefaultCountry(country string) Option {
	return func(u *Updater) {
		if country != "" {
			u.defaultCountry = country
		}
	}
}

// WithTitle sets the page heading.
func WithTitle(title string) Option {
	return func(u *Updater) {
		if title != "" {
			u.title = title
		}
	}
}
