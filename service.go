package main

import (
	"fmt"

	"github.com/kardianos/service"
	log "github.com/sirupsen/logrus"
)

// ServiceCommand install/uninstall/start/stop homedash service
type ServiceCommand struct {
}

var serviceCommand ServiceCommand

type program struct{}

func (p *program) Start(s service.Service) error {
	go p.run()
	return nil
}

func (p *program) run() {
	RunServer()
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Return with a few seconds.
	return nil
}

// Execute implement Execute() method defined in flags.Commander interface, executes the given command
func (sc ServiceCommand) Execute(args []string) error {
	if len(args) == 0 {
		showUsage()
		return nil
	}

	serviceArgs := make([]string, 0)
	if options.Configuration != "" {
		serviceArgs = append(serviceArgs, "--configuration="+options.Configuration)
	}

	svcConfig := &service.Config{
		Name:        "homedash",
		DisplayName: "homedash",
		Description: "Personal dashboard backend",
		Arguments:   serviceArgs,
	}
	prg := &program{}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		log.Error("service init failed", err)
		return err
	}

	action := args[0]
	switch action {
	case "install":
		err := s.Install()
		if err != nil {
			log.Error("Failed to install service homedash: ", err)
			fmt.Println("Failed to install service homedash: ", err)
			return err
		}
		fmt.Println("Succeed to install service homedash")
	case "uninstall":
		s.Stop()
		err := s.Uninstall()
		if err != nil {
			log.Error("Failed to uninstall service homedash: ", err)
			fmt.Println("Failed to uninstall service homedash: ", err)
			return err
		}
		fmt.Println("Succeed to uninstall service homedash")
	case "start":
		err := s.Start()
		if err != nil {
			log.Error("Failed to start service: ", err)
			fmt.Println("Failed to start service: ", err)
			return err
		}
		fmt.Println("Succeed to start service homedash")
	case "stop":
		err := s.Stop()
		if err != nil {
			log.Error("Failed to stop service: ", err)
			fmt.Println("Failed to stop service: ", err)
			return err
		}
		fmt.Println("Succeed to stop service homedash")

	default:
		showUsage()
	}

	return nil
}

func showUsage() {
	fmt.Println("usage: homedash service install/uninstall/start/stop")
}

func init() {
	parser.AddCommand("service",
		"install/uninstall/start/stop service",
		"install/uninstall/start/stop service",
		&serviceCommand)
}
