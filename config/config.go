package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/davecgh/go-spew/spew"

	"github.com/spf13/viper"
)

type config struct {
	AppEnv  string
	AppName string
	Debug   bool
	Server  struct {
		Address                string
		ShutdownTimeoutSeconds int
	}
	Database struct {
		Path          string
		BusyTimeoutMs int
	}
	Static struct {
		Dir   string
		Index string
	}
	Log struct {
		Level       string
		Development bool
	}
}

// C is config variable
var C config

// Application Environment name
const (
	Development = "development"
	Test        = "test"
	E2E         = "e2e"
	Staging     = "staging"
	Production  = "production"
)

// ReadConfigOption is a config option
type ReadConfigOption struct {
	AppEnv string
}

// ReadConfig configures config file
func ReadConfig(option ReadConfigOption) {
	Config := &C

	e := appEnv(option)

	if e == Test {
		setTest()
	} else if e == E2E {
		setE2E()
	} else if e == Staging {
		setStaging()
	} else if e == Development {
		setDev()
	} else {
		setProd()
	}

	setDefaults()

	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println(err)
		log.Fatalln(err)
	}

	if err := viper.Unmarshal(&Config); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	C.AppEnv = e

	if C.Debug {
		spew.Dump(C)
	}
}

func appEnv(option ReadConfigOption) string {
	if option.AppEnv != "" {
		return option.AppEnv
	}
	if os.Getenv("APP_ENV") != "" {
		return os.Getenv("APP_ENV")
	}

	return Development
}

func setDefaults() {
	viper.SetDefault("appName", "todo-backend")
	viper.SetDefault("server.address", "3000")
	viper.SetDefault("server.shutdownTimeoutSeconds", 10)
	viper.SetDefault("database.path", "./todos.db")
	viper.SetDefault("database.busyTimeoutMs", 5000)
	viper.SetDefault("static.dir", "public")
	viper.SetDefault("static.index", "index.html")
	viper.SetDefault("log.level", "info")
}

func rootDir() string {
	_, b, _, _ := runtime.Caller(0)
	d := path.Join(path.Dir(b))
	return filepath.Dir(d)
}

func setDev() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config")
}

func setTest() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.test")
}

func setE2E() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.e2e")
}

func setStaging() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.staging")
}

func setProd() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.production")
}
