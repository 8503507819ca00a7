package config

type (
	InternalConfig struct {
		App        App
		Scheduling Scheduling
		Sadt       Sadt
		Documents  Documents
		JWT        JWT
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		AppointmentCacheTTLInSecs int
	}

	// Scheduling points at the municipal scheduling backend.
	Scheduling struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
	}

	// Sadt points at the authoritative document-generation service. The
	// timeouts bound tiers 1 and 2 of the resolution chain.
	Sadt struct {
		BaseUrl                  string
		CheckTimeoutInSeconds    int
		GenerateTimeoutInSeconds int
	}

	Documents struct {
		ArchiveBucketName string
		PrintSpoolDir     string
		NoticesQueue      string
		ReprintMaxPerMin  int
	}

	JWT struct {
		Secret string
	}
)
