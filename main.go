package main

import (
	"context"
	"net/http"
	"net/http/cgi"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/massmux/sli-invoice/internal"
	"github.com/massmux/sli-invoice/internal/api"
	"github.com/massmux/sli-invoice/internal/api/invoicepage"
	"github.com/massmux/sli-invoice/internal/invoice"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// setLogger will initialize the log format
func setLogger() {
	level, err := log.ParseLevel(internal.Configuration.Log.Level)
	if err != nil {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
	// stdout carries the page in cgi mode
	log.SetOutput(os.Stderr)
}

func main() {
	// set logger
	setLogger()

	defer withRecovery()
	page := newInvoicePage()
	if isCGI() {
		serveCGI(page)
		return
	}
	startApiServer(newApiServer(page))
}

func newInvoicePage() invoicepage.Service {
	conf := internal.Configuration.Invoice
	return invoicepage.New(invoice.Artifacts{
		ImagePath: conf.QRPath,
		TextPath:  conf.TxtPath,
	}, conf.QRUrl)
}

func newApiServer(page invoicepage.Service) *api.Server {
	conf := internal.Configuration
	s := api.NewServer(conf.Server.Host)
	s.AppendRoute(conf.Server.Route, page.InvoicePageHandler, http.MethodGet, http.MethodHead)
	s.AppendRoute("/", page.InvoicePageHandler, http.MethodGet, http.MethodHead)
	if conf.Server.ServeImage {
		s.AppendFile(conf.Invoice.QRUrlParsed.Path, conf.Invoice.QRPath)
	}
	return s
}

func startApiServer(s *api.Server) {
	errc := make(chan error, 1)
	go func() {
		errc <- s.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		if err != nil {
			log.Errorf("[api] %v", err)
		}
		return
	case <-sig:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Errorf("[api] shutdown: %v", err)
	}
}

func isCGI() bool {
	return os.Getenv("GATEWAY_INTERFACE") != ""
}

// serveCGI answers the single request of a cgi invocation. Every request gets the page.
func serveCGI(page invoicepage.Service) {
	if err := cgi.Serve(api.LoggingMiddleware("CGI", page.InvoicePageHandler)); err != nil {
		log.Errorf("[CGI] %v", err)
	}
}

func withRecovery() {
	if r := recover(); r != nil {
		log.Errorln("Recovered panic: ", r)
		debug.PrintStack()
	}
}
