package internal

import (
	"net/url"

	"github.com/jinzhu/configor"
	log "github.com/sirupsen/logrus"
)

var Configuration = struct {
	Server  ServerConfiguration  `yaml:"server"`
	Invoice InvoiceConfiguration `yaml:"invoice"`
	Log     LogConfiguration     `yaml:"log"`
}{}

type ServerConfiguration struct {
	Host       string `yaml:"host" default:"0.0.0.0:8080"`
	Route      string `yaml:"route" default:"/cgi-bin/sli-invoice.cgi"`
	ServeImage bool   `yaml:"serve_image"`
}

// InvoiceConfiguration points to the files written by `sli wallet qr-invoice`.
// QRUrl is what the page puts into <img src>, QRPath and TxtPath are checked on disk.
type InvoiceConfiguration struct {
	QRUrl       string   `yaml:"qr_url" default:"http://0xeeli.local/pay/invoice.png"`
	QRUrlParsed *url.URL `yaml:"-"`
	QRPath      string   `yaml:"qr_path" default:"../vhosts/0xeeli.local/www/pay/invoice.png"`
	TxtPath     string   `yaml:"txt_path" default:"../vhosts/0xeeli.local/www/pay/invoice.txt"`
}

type LogConfiguration struct {
	Level string `yaml:"level" default:"debug"`
}

func init() {
	// silent: configor prints to stdout, which is the response body in cgi mode
	err := configor.New(&configor.Config{Silent: true}).Load(&Configuration, "config.yaml")
	if err != nil {
		panic(err)
	}
	qrUrl, err := url.Parse(Configuration.Invoice.QRUrl)
	if err != nil {
		panic(err)
	}
	Configuration.Invoice.QRUrlParsed = qrUrl
	checkLogConfiguration()
}

func checkLogConfiguration() {
	if _, err := log.ParseLevel(Configuration.Log.Level); err != nil {
		log.Warnf("[config] unknown log level %q, using debug", Configuration.Log.Level)
		Configuration.Log.Level = log.DebugLevel.String()
	}
}
