// Package content holds the authored portfolio project lists.
//
// Each revision replaces the previous list wholesale. Entry order is display order.
package content

import (
	"errors"
	"fmt"

	"folio.dev/internal/models"
)

// ErrUnknownRevision is returned when a revision number was never authored
var ErrUnknownRevision = errors.New("unknown revision")

// ImageBase is the static asset prefix every imgSrc resolves against
const ImageBase = "/static/images/"

const (
	placeholderGoogle      = ImageBase + "google.png"
	placeholderTimeMachine = ImageBase + "time-machine.jpg"
)

const (
	descToryBurch = "Tory Burch is an American lifestyle brand. Its eCommerce storefront brings ready-to-wear, " +
		"handbags, shoes, and accessories to customers around the world."
	descPayever = "Payever is a unique commerce solution that covers the whole sales cycle, from online shop and " +
		"point-of-sale software to payment, customer relationship management, marketing, inventory, and shipping tools. " +
		"All solutions interlock seamlessly, and when your business grows, the intuitive platform used by over 5,000 " +
		"merchants just grows with you."
	descYjewelry = "Yjewelry is an online eCommerce store where you can buy from the thousands of available chains, " +
		"Charms, and sets or curate your own unique design using Yjewelry's online curator."
	descShiftal    = "Shiftal is an online Crypto trading platform built on top of openDAX where you can trade 50+ cryptocurrencies with ease."
	descMotorsport = "Simple and intuitive platform to Buy, collect, and Trade motorsport NFTs."
	descSettleezee = "Settleezee simplifies the study abroad process by connecting students and recruitment partner schools on a single platform."
)

const (
	hrefToryBurch  = "https://www.toryburch.com/en-us/"
	hrefPayever    = "https://getpayever.com/"
	hrefYjewelry   = "https://y.jewelry/"
	hrefShiftal    = "https://www.shiftal.com/"
	hrefMotorsport = "https://frontend-dev.motorsportmultiverse.com/"
	hrefSettleezee = "https://www.settleezee.com/"
)

var revisions = []models.Revision{
	{
		Number: 1,
		Projects: []models.Project{
			{Title: "Payever", Description: descPayever, ImgSrc: placeholderGoogle, Href: hrefPayever},
			{Title: "Yjewelry", Description: descYjewelry, ImgSrc: placeholderTimeMachine, Href: hrefYjewelry},
			{Title: "Shiftal", Description: descShiftal, ImgSrc: placeholderTimeMachine, Href: hrefShiftal},
			{Title: "Motorsport Multiverse", Description: descMotorsport, ImgSrc: placeholderTimeMachine, Href: hrefMotorsport},
			{Title: "Settleezee", Description: descSettleezee, ImgSrc: placeholderTimeMachine, Href: hrefSettleezee},
		},
	},
	{
		Number: 2,
		Projects: []models.Project{
			{Title: "Tory Burch", Description: descToryBurch, ImgSrc: placeholderGoogle, Href: hrefToryBurch},
			{Title: "Payever", Description: descPayever, ImgSrc: placeholderGoogle, Href: hrefPayever},
			{Title: "Yjewelry", Description: descYjewelry, ImgSrc: placeholderTimeMachine, Href: hrefYjewelry},
			{Title: "Shiftal", Description: descShiftal, ImgSrc: placeholderTimeMachine, Href: hrefShiftal},
			{Title: "Motorsport Multiverse", Description: descMotorsport, ImgSrc: placeholderTimeMachine, Href: hrefMotorsport},
			{Title: "Settleezee", Description: descSettleezee, ImgSrc: placeholderTimeMachine, Href: hrefSettleezee},
		},
	},
	{
		Number: 3,
		Projects: []models.Project{
			{Title: "Tory Burch", Description: descToryBurch, ImgSrc: ImageBase + "projects/tory-burch.png", Href: hrefToryBurch},
			{Title: "Payever", Description: descPayever, ImgSrc: ImageBase + "projects/payever.png", Href: hrefPayever},
			{Title: "Yjewelry", Description: descYjewelry, ImgSrc: ImageBase + "projects/yjewelry.png", Href: hrefYjewelry},
			{Title: "Shiftal", Description: descShiftal, ImgSrc: ImageBase + "projects/shiftal.png", Href: hrefShiftal},
			{Title: "Settleezee", Description: descSettleezee, ImgSrc: ImageBase + "projects/settleezee.png", Href: hrefSettleezee},
		},
	},
	{
		Number: 4,
		Projects: []models.Project{
			{Title: "Tory Burch", Description: descToryBurch, ImgSrc: ImageBase + "projects/tory-burch.png", Href: hrefToryBurch},
			{Title: "Payever", Description: descPayever, ImgSrc: ImageBase + "projects/payever.png", Href: hrefPayever},
			{Title: "Yjewelry", Description: descYjewelry, ImgSrc: ImageBase + "projects/yjewelry.png", Href: hrefYjewelry},
			{Title: "Shiftal", Description: descShiftal, ImgSrc: ImageBase + "projects/shiftal.png", Href: hrefShiftal},
			{Title: "Motorsport Multiverse", Description: descMotorsport, ImgSrc: ImageBase + "projects/motorsport-multiverse.png", Href: hrefMotorsport},
			{Title: "Settleezee", Description: descSettleezee, ImgSrc: ImageBase + "projects/settleezee.png", Href: hrefSettleezee},
		},
	},
}

// Revisions returns every authored revision, oldest first
func Revisions() []models.Revision {
	out := make([]models.Revision, len(revisions))
	for i, rev := range revisions {
		out[i] = clone(rev)
	}
	return out
}

// Latest returns the most recent revision
func Latest() models.Revision {
	return clone(revisions[len(revisions)-1])
}

// Get returns revision n
func Get(n int) (models.Revision, error) {
	for _, rev := range revisions {
		if rev.Number == n {
			return clone(rev), nil
		}
	}
	return models.Revision{}, fmt.Errorf("%w: %d", ErrUnknownRevision, n)
}

// Projects returns the latest project list in display order
func Projects() []models.Project {
	return Latest().Projects
}

func clone(rev models.Revision) models.Revision {
	projects := make([]models.Project, len(rev.Projects))
	copy(projects, rev.Projects)
	return models.Revision{Number: rev.Number, Projects: projects}
}
