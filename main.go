package main

import (
	"fmt"
	gologger "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shopify/sarama"
	"github.com/commercegate/helcim-gateway/config"
	"github.com/commercegate/helcim-gateway/dao"
	"github.com/commercegate/helcim-gateway/events"
	"github.com/commercegate/helcim-gateway/gateway"
	"github.com/commercegate/helcim-gateway/handlers"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/pat"
)

func main() {
	log.Namespace = "helcim-gateway"

	// Push the Sarama logs into our custom writer
	sarama.Logger = gologger.New(&log.Writer{}, "[Sarama] ", gologger.LstdFlags)

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err), nil)
		return
	}

	log.Info("intialising helcim-gateway service...")

	daoService := dao.NewGatewayDAOService(cfg)
	defer daoService.Shutdown()

	var publisher events.Publisher
	if len(cfg.BrokerAddr) > 0 {
		publisher, err = events.NewKafkaPublisher(cfg.BrokerAddr, cfg.TransactionProcessedTopic)
		if err != nil {
			log.Error(fmt.Errorf("error initialising transaction processed publisher: '%s'. Exiting", err), nil)
			return
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error(fmt.Errorf("error closing transaction processed publisher: %s", err), nil)
			}
		}()
	} else {
		log.Info("no broker addresses configured; transaction processed events will not be published")
	}

	gw := gateway.New(cfg, daoService, publisher)

	router := pat.New()
	handlers.Init(router, gw)
	go func() {
		log.Info("Starting HTTP server on :" + "8080")
		if err := http.ListenAndServe(":8080", router); err != nil {
			log.Error(fmt.Errorf("error starting HTTP server: %s", err), nil)
		}
	}()

	waitForServiceClose()

	log.Info("Application successfully shutdown")
}

// waitForServiceClose blocks until an interrupt or termination signal is
// received, at which point the deferred producer and datastore shutdowns run.
func waitForServiceClose() {

	notificationChannel := make(chan os.Signal, 1)
	signal.Notify(notificationChannel, os.Interrupt, os.Kill, syscall.SIGTERM)

	<-notificationChannel
	log.Info("Close signal received, shutting down...")
}
