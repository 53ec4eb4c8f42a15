package config

type InternalConfig struct {
	App   App
	JWT   AppJWT
	Minio AppMinio
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	MaxTimeRequestsPerSeconds      int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
	LoginMaxAttemptsPerMinute      int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	LogoMaxUploadSizeInMB int
	BucketName            string
	PublicURL             string
}
