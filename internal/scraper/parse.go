package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/osse101/SubRace_Go/internal/domain"
)

var (
	primeRe = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*Prime`)
	tier1Re = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*Tier 1`)
	tier2Re = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*Tier 2`)
	tier3Re = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*Tier 3`)
)

// ParseSubscribersPage extracts subscriber counts from a twitchtracker
// subscribers page. A page without an active subscription count returns
// domain.ErrNoSubscriberData.
func ParseSubscribersPage(handle string, r io.Reader) (*domain.ScrapedSubs, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page for %s: %w", handle, err)
	}

	subs := &domain.ScrapedSubs{Handle: handle}

	doc.Find("div.g-col-4").Each(func(_ int, s *goquery.Selection) {
		paragraphs := s.Find("p")
		label := strings.TrimSpace(paragraphs.First().Text())
		value := parseCount(paragraphs.Last().Text())

		switch {
		case strings.Contains(label, labelActiveSubs):
			subs.TotalSubs = value
		case strings.Contains(label, labelPaidSubs):
			subs.PaidSubs = value
		case strings.Contains(label, labelGiftedSubs):
			subs.GiftedSubs = value
		}
	})

	doc.Find("div.row").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		matchInto(primeRe, text, &subs.PrimeSubs)
		matchInto(tier1Re, text, &subs.Tier1Subs)
		matchInto(tier2Re, text, &subs.Tier2Subs)
		matchInto(tier3Re, text, &subs.Tier3Subs)
	})

	if subs.TotalSubs == 0 {
		return nil, fmt.Errorf("%w for %s", domain.ErrNoSubscriberData, handle)
	}
	return subs, nil
}

func matchInto(re *regexp.Regexp, text string, dst *int64) {
	if m := re.FindStringSubmatch(text); m != nil {
		*dst = parseCount(m[1])
	}
}

// parseCount reads a leading integer with thousands separators, 0 on failure
func parseCount(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
