package xmlutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParseDocument parses a generated XML document and returns its root node.
func ParseDocument(document string) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(strings.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML document: %w", err)
	}
	return root, nil
}

// ExtractFromXML extracts values from an XML node using an XPath expression
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}

	return values, nil
}

// ExtractOne extracts the first value matching an XPath expression, or an
// empty string when nothing matches.
func ExtractOne(root *xmlpath.Node, xpath string) (string, error) {
	values, err := ExtractFromXML(root, xpath)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}
	return values[0], nil
}

// VerifyDocument checks a generated payment-initiation document for
// internal consistency: the group header's declared transaction count and
// control sum must match the transactions actually present. It does not
// replace XSD validation; it catches the aggregation mistakes XSD
// validation cannot see.
func VerifyDocument(document string) error {
	root, err := ParseDocument(document)
	if err != nil {
		return err
	}

	amounts, err := ExtractFromXML(root, XPathInstructedAmount)
	if err != nil {
		return err
	}

	declaredCount, err := ExtractOne(root, XPathHeaderTransactionCount)
	if err != nil {
		return err
	}
	if declaredCount != fmt.Sprintf("%d", len(amounts)) {
		return fmt.Errorf("document declares %s transactions but contains %d", declaredCount, len(amounts))
	}

	total := decimal.Zero
	for _, a := range amounts {
		amount, err := decimal.NewFromString(a)
		if err != nil {
			return fmt.Errorf("invalid instructed amount %q: %w", a, err)
		}
		total = total.Add(amount)
	}

	declaredSum, err := ExtractOne(root, XPathHeaderControlSum)
	if err != nil {
		return err
	}
	if declaredSum != total.StringFixed(2) {
		return fmt.Errorf("document declares control sum %s but transactions total %s", declaredSum, total.StringFixed(2))
	}

	log.WithFields(logrus.Fields{
		"transactions": len(amounts),
		"control_sum":  declaredSum,
	}).Debug("Document verification passed")
	return nil
}
