package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ResultFile string
	FetchDir   string
	LogsDir    string

	FTP FTPConfig
}

type FTPConfig struct {
	Host                string
	Port                int
	Username            string
	Password            string
	RemoteDir           string
	FilePattern         string
	ArchiveDir          string
	DeleteAfterDownload bool
	MoveAfterDownload   bool
}

// Load reads the optional .env file and the environment. Every knob
// has a default, so a bare run reads ./result.csv and prints the
// table to stdout.
func Load() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(os.Getenv("FTP_PORT"))
	deleteAfterDownload, _ := strconv.ParseBool(os.Getenv("FTP_DELETE"))
	moveAfterDownload, _ := strconv.ParseBool(os.Getenv("FTP_MOVE"))

	return &Config{
		ResultFile: envOr("RESULT_FILE", "result.csv"),
		FetchDir:   envOr("FETCH_DIR", "."),
		LogsDir:    envOr("LOG_PATH", "logs"),

		FTP: FTPConfig{
			Host:                os.Getenv("FTP_HOST"),
			Port:                port,
			Username:            os.Getenv("FTP_USERNAME"),
			Password:            os.Getenv("FTP_PASSWORD"),
			RemoteDir:           os.Getenv("FTP_REMOTE_DIR"),
			FilePattern:         envOr("FTP_FILE_PATTERN", "result*.csv"),
			ArchiveDir:          os.Getenv("FTP_ARCHIVE_DIR"),
			DeleteAfterDownload: deleteAfterDownload,
			MoveAfterDownload:   moveAfterDownload,
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
