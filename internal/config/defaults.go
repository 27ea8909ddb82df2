package config

const (
	defaultDataDir                  = "~/.local/share/moviematch"
	defaultLogDir                   = "~/.local/share/moviematch/logs"
	defaultBasicsPath               = "~/.local/share/moviematch/full_title.basics.tsv"
	defaultRatingsPath              = "~/.local/share/moviematch/title.ratings.tsv"
	defaultLogFormat                = "console"
	defaultLogLevel                 = "info"
	defaultInferenceBaseURL         = "https://api-inference.huggingface.co"
	defaultInferenceModel           = "nateraw/bert-base-uncased-emotion"
	defaultInferenceTimeoutSeconds  = 30
	defaultReviewsBaseURL           = "https://www.imdb.com"
	defaultReviewsTimeoutSeconds    = 15
	defaultReviewsFetchDelaySeconds = 1
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:     defaultDataDir,
			LogDir:      defaultLogDir,
			BasicsPath:  defaultBasicsPath,
			RatingsPath: defaultRatingsPath,
		},
		Inference: Inference{
			BaseURL:        defaultInferenceBaseURL,
			Model:          defaultInferenceModel,
			TimeoutSeconds: defaultInferenceTimeoutSeconds,
		},
		Reviews: Reviews{
			BaseURL:           defaultReviewsBaseURL,
			TimeoutSeconds:    defaultReviewsTimeoutSeconds,
			FetchDelaySeconds: defaultReviewsFetchDelaySeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
