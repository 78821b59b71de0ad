package cli

import (
	"fmt"
	"strings"

	"github.com/ami93120/mosque-calendar/internal/config"
	"github.com/ami93120/mosque-calendar/internal/display"
)

// clientHeaderLines builds the identity block printed above the
// rendered pages.
func clientHeaderLines(cc *config.ClientConfig) []string {
	if cc == nil {
		return nil
	}
	name := cc.Identity.NameFR
	if cc.Identity.NameTA != "" {
		name += "  /  " + cc.Identity.NameTA
	}
	return []string{name}
}

// clientFooterLines builds the contact block printed below the rendered
// pages. Only the fields the document carries appear.
func clientFooterLines(cc *config.ClientConfig) []string {
	if cc == nil {
		return nil
	}
	var lines []string

	if cc.Contact.Addr1 != "" {
		addr := cc.Contact.Addr1
		if cc.Contact.Addr2 != "" {
			addr += ", " + cc.Contact.Addr2
		}
		lines = append(lines, addr)
	}

	var reach []string
	if cc.Contact.Phone != "" {
		reach = append(reach, cc.Contact.Phone)
	}
	if cc.Contact.Email != "" {
		reach = append(reach, cc.Contact.Email)
	}
	if cc.Contact.Website != "" {
		reach = append(reach, cc.Contact.Website)
	}
	if len(reach) > 0 {
		lines = append(lines, strings.Join(reach, " | "))
	}

	if cc.Contact.DonationURL != "" {
		lines = append(lines, "Dons : "+cc.Contact.DonationURL)
	}
	if cc.Contact.Bank != nil {
		lines = append(lines, "IBAN "+cc.Contact.Bank.IBAN+"  BIC "+cc.Contact.Bank.BIC)
	}
	return lines
}

func printClientHeader(cc *config.ClientConfig) {
	lines := clientHeaderLines(cc)
	if len(lines) == 0 {
		return
	}
	fmt.Println()
	for _, line := range lines {
		fmt.Printf("  %s\n", display.Bold(line))
	}
}

func printClientFooter(cc *config.ClientConfig) {
	lines := clientFooterLines(cc)
	if len(lines) == 0 {
		return
	}
	fmt.Println()
	for _, line := range lines {
		fmt.Printf("  %s\n", display.Dim(line))
	}
	fmt.Println()
}
