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
	Data     Data     `koanf:"data"`
	Session  Session  `koanf:"session"`
	Banners  Banners  `koanf:"banners"`
	Frontend Frontend `koanf:"frontend"`
}

type Data struct {
	// Dir holds the static JSON data files (events.json, banners.json, ...).
	Dir string `koanf:"dir"`
	// PlaceholderImage is served when an event has no image fields at all.
	PlaceholderImage string `koanf:"placeholderimage"`
	// ReloadSchedule is a cron expression for re-reading the data files.
	ReloadSchedule string `koanf:"reloadschedule"`
}

type Session struct {
	// TTLMinutes is how long an idle session keeps its bookmarks and profile.
	TTLMinutes int `koanf:"ttlminutes"`
}

type Banners struct {
	// RotationSeconds is the interval between hero banner slides.
	RotationSeconds int `koanf:"rotationseconds"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8181",
		Data: Data{
			Dir:              "./data",
			PlaceholderImage: "/images/event-placeholder.jpg",
			ReloadSchedule:   "@daily",
		},
		Session: Session{
			TTLMinutes: 120,
		},
		Banners: Banners{
			RotationSeconds: 6,
		},
		Frontend: Frontend{
			Enabled: true,
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
		Prefix: "CAMPUSCONNECT_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "CAMPUSCONNECT_")), "_", ".")
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
