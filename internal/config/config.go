package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr     string   `koanf:"addr"`
	Frontend Frontend `koanf:"frontend"`
	Users    []User   `koanf:"users"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// User seeds one roster entry. The password is a plaintext shared secret
// compared verbatim on login.
type User struct {
	Id       string `koanf:"id"`
	Name     string `koanf:"name"`
	Color    string `koanf:"color"`
	Password string `koanf:"password"`
	Admin    bool   `koanf:"admin"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Users: []User{
			{Id: "1", Name: "Kovács János", Color: "#FF5733", Password: "janos123"},
			{Id: "2", Name: "Nagy Éva", Color: "#33FF57", Password: "eva123"},
			{Id: "3", Name: "Szabó Péter", Color: "#3357FF", Password: "peter123"},
			{Id: "admin", Name: "Rendszergazda", Color: "#9333FF", Password: "admin123", Admin: true},
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "NAPTAR_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "NAPTAR_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
