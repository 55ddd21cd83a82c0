package harvest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/qepting91/complaint-harvester/internal/domain"
)

// Extractor turns card HTML into posts using goquery selectors.
type Extractor struct {
	sel Selectors
}

func NewExtractor(sel Selectors) *Extractor {
	return &Extractor{sel: sel}
}

// Batch is the outcome of one extraction pass.
type Batch struct {
	Posts []domain.RawPost
	// Consumed is how many cards past alreadySeen were examined.
	Consumed int
	Skipped  []*domain.CardExtractionError
}

// ExtractNew reads only cards[alreadySeen:], so a pass costs as much as the feed grew.
// Emitted posts get ids nextID, nextID+1, ...; skipped cards consume none.
// At most limit posts are emitted; the scan stops as soon as the limit is hit.
func (e *Extractor) ExtractNew(cards []string, alreadySeen, nextID, limit int) Batch {
	var b Batch
	for i := alreadySeen; i < len(cards); i++ {
		if len(b.Posts) >= limit {
			break
		}
		b.Consumed++

		post, err := e.parseCard(cards[i])
		if err != nil {
			b.Skipped = append(b.Skipped, &domain.CardExtractionError{Index: i, Err: err})
			continue
		}
		post.SourceID = nextID + len(b.Posts)
		b.Posts = append(b.Posts, post)
	}
	return b
}

func (e *Extractor) parseCard(html string) (domain.RawPost, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.RawPost{}, err
	}

	body := doc.Find(e.sel.Body).First()
	if body.Length() == 0 {
		return domain.RawPost{}, domain.ErrMissingBody
	}
	text := strings.TrimSpace(body.Text())
	if text == "" {
		return domain.RawPost{}, domain.ErrMissingBody
	}

	return domain.RawPost{
		BodyText:     text,
		AuthorHandle: optionalText(doc, e.sel.Author),
		PostedAtRaw:  optionalText(doc, e.sel.PostedAt),
		SourceSite:   domain.SourceSite,
	}, nil
}

// optionalText returns nil when the element is absent.
func optionalText(doc *goquery.Document, selector string) *string {
	if selector == "" {
		return nil
	}
	s := doc.Find(selector).First()
	if s.Length() == 0 {
		return nil
	}
	v := strings.TrimSpace(s.Text())
	return &v
}
