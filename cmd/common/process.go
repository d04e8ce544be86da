// Package common provides the shared generation pipeline used by the
// credit and debit commands.
package common

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"fjacquet/sepa-pain/internal/batch"
	"fjacquet/sepa-pain/internal/fileutils"
	"fjacquet/sepa-pain/internal/logging"
	"fjacquet/sepa-pain/internal/sepa"
	"fjacquet/sepa-pain/internal/xmlutils"
)

// Generate loads a batch description, builds a transfer file of the given
// message type, renders it, optionally verifies the output and writes it
// to outputFile (or stdout when empty).
func Generate(msgType sepa.MessageType, inputFile, outputFile string, validate bool, logger *logrus.Logger) error {
	if inputFile == "" {
		return fmt.Errorf("no input file specified (use --input)")
	}
	if logger == nil {
		logger = logrus.New()
	}
	log := logging.NewLogrusAdapterFromLogger(logger)

	description, err := batch.LoadFile(inputFile, log)
	if err != nil {
		return err
	}

	file, err := description.Build(msgType, log)
	if err != nil {
		return err
	}

	document := file.AsXML()

	if validate {
		if err := xmlutils.VerifyDocument(document); err != nil {
			return fmt.Errorf("generated document failed verification: %w", err)
		}
		logger.Info("Document verification passed")
	}

	if outputFile == "" {
		fmt.Print(document)
		return nil
	}

	if err := fileutils.WriteFile(outputFile, []byte(document), 0644); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"file":         outputFile,
		"transactions": file.TransactionCount(),
	}).Info("Document written")
	return nil
}
