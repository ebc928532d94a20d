package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"wolfcore/config"
	"wolfcore/level"
	"wolfcore/logger"
)

// used when no -level is given
var defaultLayout = []string{
	"################",
	"#......#.......#",
	"#..o...|...g...#",
	"#......#.......#",
	"#.>....#...p...#",
	"###-####.......#",
	"#......#####-###",
	"#..p...#.......#",
	"#......|...o...#",
	"#...g..#.......E",
	"################",
}

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	levelPath := flag.String("level", "", "level to load (.json planes or .png colour map)")
	demo := flag.Bool("demo", false, "step through the ray cast one grid cell at a time")
	printSchema := flag.Bool("level-schema", false, "print the JSON schema of level files and exit")
	flag.Parse()

	if *printSchema {
		data, err := level.Schema()
		if err != nil {
			logger.Log.WithError(err).Fatal("generating level schema")
		}
		os.Stdout.Write(append(data, '\n'))
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("loading config")
	}
	logger.Init(cfg.Log)

	lvl, err := loadLevel(*levelPath)
	if err != nil {
		logger.Log.WithError(err).WithField("path", *levelPath).Fatal("loading level")
	}

	logger.Log.WithFields(logrus.Fields{
		"level":    lvl.Name,
		"demo":     *demo,
		"viewport": cfg.Render.ViewportWidth,
	}).Info("starting")

	g, err := NewGame(cfg, lvl, *demo)
	if err != nil {
		logger.Log.WithError(err).Fatal("initializing game")
	}
	g.Run()
}

func loadLevel(path string) (level.Level, error) {
	if path == "" {
		lvl, err := level.ParseLayout(defaultLayout)
		lvl.Name = "default"
		return lvl, err
	}
	return level.LoadFile(path)
}
