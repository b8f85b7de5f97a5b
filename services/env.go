package services

import "os"

type envService struct{}

func newEnvService() EnvService {
	return envService{}
}

func (envService) Getenv(key string) string {
	return os.Getenv(key)
}

func (envService) Setenv(key, value string) error {
	return os.Setenv(key, value)
}
