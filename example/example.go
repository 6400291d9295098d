// Command ja3sniff captures TLS ClientHello packets from a live
// interface or a pcap file and logs the JA3 fingerprint text of each,
// with a lookup against a small table of known clients.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
	"github.com/rs/zerolog"

	"github.com/tlsprint/ja3"
)

// knownClients maps pre-hash JA3 texts to a friendly name. Parsed into
// the DB at startup so lookups match on record contents rather than on
// the exact string.
var knownClients = map[string]string{
	"771,4865-4866-4867-49195-49199-49196-49200-52393-52392,0-23-65281-10-11-35-16-5-13-18-51-45-43-27,29-23-24,0": "Chrome-ish",
	"771,4865-4867-4866-49195-49199-52393-52392-49196-49200,0-23-65281-10-11-35-16-5-34-51-43-13-45-28,29-23-24-25-256-257,0": "Firefox-ish",
}

func main() {
	intStr := flag.String("i", "en0", "interface to sniff")
	file := flag.String("f", "", "pcap file")
	debug := flag.Bool("d", false, "debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	db := ja3.DB{}
	for text, name := range knownClients {
		fp, err := ja3.ParseFingerprint(text)
		if err != nil {
			logger.Fatal().Err(err).Str("ja3", text).Msg("bad fingerprint in client table")
		}
		db.Add(fp, name)
	}

	if err := doSniff(logger, db, *intStr, *file); err != nil {
		logger.Fatal().Err(err).Msg("sniff failed")
	}
}

func doSniff(logger zerolog.Logger, db ja3.DB, device string, file string) error {
	var (
		handle *pcap.Handle
		err    error
	)
	if len(file) > 0 {
		handle, err = pcap.OpenOffline(file)
	} else {
		// the 0 and true refer to snaplen and promisc mode.  For now we always want these.
		handle, err = pcap.OpenLive(device, 0, true, pcap.BlockForever)
	}
	if err != nil {
		return err
	}
	defer handle.Close()

	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	for packet := range packetSource.Packets() {
		app := packet.ApplicationLayer()
		if app == nil {
			continue
		}
		payload := app.Payload()
		if ja3.IsClientHello(payload) != nil {
			continue
		}

		var fp ja3.Fingerprint
		if err := fp.ProcessClientHello(payload); err != nil {
			logger.Debug().Err(err).Msg("could not process client hello")
			continue
		}

		event := logger.Info().Str("ja3", fp.String())
		if name, ok := db.Lookup(fp); ok {
			event = event.Str("client", name)
		}
		event.Msg("client hello")
	}
	return nil
}
