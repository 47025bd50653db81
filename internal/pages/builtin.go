package pages

import "tsgfulfillment.com/web/internal/seo"

// Builtin is the catalog served when no content directory overrides it.
var Builtin = []Page{
	{
		Path:        "/",
		Kind:        KindHome,
		Title:       "TSG Fulfillment Services | Warehousing & Order Fulfillment in Canada",
		Heading:     "Fulfillment that scales with your business",
		Description: "Third-party logistics from the Greater Toronto Area: warehousing, order fulfillment, kitting, freight and returns for e-commerce and retail brands.",
		OGImage:     "/images/og/home.jpg",
		Body: `TSG Fulfillment Services stores, picks, packs and ships for brands selling online and in stores.

- Same-day order processing on orders received before 2 PM
- Integrations with Shopify, Amazon and major carriers
- Bonded, climate-controlled warehouse space

[Get a quote](/quote) or [explore our services](/services).`,
	},
	{
		Path:        "/services",
		Kind:        KindListing,
		Lists:       KindService,
		Title:       "Fulfillment & Logistics Services",
		Description: "Warehousing, order fulfillment, kitting, freight forwarding, returns processing and value-added services from TSG Fulfillment.",
		Body:        "Every service can be combined into a single fulfillment program tailored to your volumes.",
	},
	{
		Path:        "/services/warehousing-services",
		Kind:        KindService,
		Order:       1,
		Title:       "Warehousing Services",
		Description: "Secure, scalable warehousing with real-time inventory visibility, pallet and bin storage, and bonded space near Toronto.",
		OGImage:     "/images/og/warehousing.jpg",
		Body: `## Storage built around your inventory

Pallet, shelf and bin storage with cycle counts and live stock levels in our client portal.

## Why brands choose TSG

- Climate-controlled and bonded space
- 24/7 monitored facility
- Flexible month-to-month terms`,
		FAQ: []seo.Question{
			{Question: "Do you require long-term storage contracts?", Answer: "No. Storage is billed monthly by pallet or bin position."},
			{Question: "Can I see my inventory in real time?", Answer: "Yes. Stock levels update in the client portal as orders ship and receipts are put away."},
		},
	},
	{
		Path:        "/services/order-fulfillment",
		Kind:        KindService,
		Order:       2,
		Title:       "Order Fulfillment",
		Description: "Pick, pack and ship for e-commerce and B2B orders with same-day processing and discounted carrier rates.",
		OGImage:     "/images/og/fulfillment.jpg",
		Body: `## From checkout to doorstep

Orders flow in from your store automatically. We pick, pack and hand off to the best-rated carrier the same day.`,
	},
	{
		Path:        "/services/kitting-services",
		Kind:        KindService,
		Order:       3,
		Title:       "Kitting & Assembly Services",
		Description: "Subscription boxes, promotional kits and light assembly handled by trained kitting teams.",
		Body: `## Kits assembled your way

Bundles, subscription boxes and retail-ready displays built to your bill of materials.`,
	},
	{
		Path:        "/services/freight-forwarding",
		Kind:        KindService,
		Order:       4,
		Title:       "Freight Forwarding",
		Description: "LTL, FTL and cross-border freight coordinated with customs brokerage for shipments between Canada and the US.",
		Body: `## Freight without the paperwork

We book, track and clear inbound and outbound freight so your stock arrives on schedule.`,
	},
	{
		Path:        "/services/returns-processing",
		Kind:        KindService,
		Order:       5,
		Title:       "Returns Processing",
		Description: "Reverse logistics with inspection, grading, restocking and disposal reporting.",
		Body: `## Turn returns back into inventory

Every return is inspected, graded and restocked or routed for liquidation within 48 hours.`,
	},
	{
		Path:        "/services/value-added-services",
		Kind:        KindService,
		Order:       6,
		Title:       "Value-Added Services",
		Description: "Labeling, relabeling, custom packaging, inserts and quality inspections.",
		Body: `## The extra steps your products need

Labeling, polybagging, gift wrapping, inserts and inspections done in line with fulfillment.`,
	},
	{
		Path:        "/industries",
		Kind:        KindListing,
		Lists:       KindIndustry,
		Title:       "Industries We Serve",
		Description: "Fulfillment programs for e-commerce, retail, health and beauty, and consumer packaged goods brands.",
		Body:        "Each industry has its own compliance, packaging and service-level needs. Our programs are built around them.",
	},
	{
		Path:        "/industries/ecommerce",
		Kind:        KindIndustry,
		Order:       1,
		Title:       "E-commerce Fulfillment",
		Description: "Direct-to-consumer fulfillment integrated with Shopify, WooCommerce, Amazon and marketplaces.",
		Body:        "Fast, accurate DTC fulfillment with branded packaging and real-time tracking.",
	},
	{
		Path:        "/industries/retail",
		Kind:        KindIndustry,
		Order:       2,
		Title:       "Retail Distribution",
		Description: "Retail-compliant distribution with EDI, routing guides and store replenishment.",
		Body:        "We meet big-box routing guides and label requirements so chargebacks stay off your books.",
	},
	{
		Path:        "/industries/health-and-beauty",
		Kind:        KindIndustry,
		Order:       3,
		Title:       "Health & Beauty Fulfillment",
		Description: "Lot-tracked, expiry-aware fulfillment for cosmetics, supplements and personal care.",
		Body:        "FEFO picking, lot tracking and temperature monitoring for sensitive products.",
	},
	{
		Path:        "/industries/consumer-packaged-goods",
		Kind:        KindIndustry,
		Order:       4,
		Title:       "Consumer Packaged Goods",
		Description: "High-volume CPG distribution to retailers, wholesalers and direct-to-consumer channels.",
		Body:        "Case-pick and each-pick operations scaled for seasonal peaks.",
	},
	{
		Path:        "/about",
		Kind:        KindPage,
		Title:       "About Us",
		Description: "TSG Fulfillment Services is a Canadian third-party logistics provider serving growing brands since 2002.",
		Body:        "We are a family-run 3PL with a focus on accuracy, communication and long-term partnerships.",
	},
	{
		Path:        "/locations",
		Kind:        KindPage,
		Title:       "Locations",
		Description: "Our fulfillment centre in Vaughan, Ontario serves the Greater Toronto Area and ships across North America.",
		Body:        "6750 Langstaff Road, Vaughan, ON L4H 5K2",
	},
	{
		Path:        "/contact",
		Kind:        KindPage,
		Title:       "Contact Us",
		Description: "Talk to the TSG Fulfillment team about warehousing, fulfillment or freight.",
		Body:        "Call us at +1 289-815-5869 or send a message and we will respond within one business day.",
	},
	{
		Path:        "/quote",
		Kind:        KindPage,
		Title:       "Request a Quote",
		Description: "Tell us about your products and volumes and receive a fulfillment quote within 24 hours.",
		Body:        "Share your monthly order volume, SKU count and storage needs to get started.",
	},
	{
		Path:        "/careers",
		Kind:        KindPage,
		Title:       "Careers",
		Description: "Join the TSG Fulfillment team in warehouse operations, customer success and logistics.",
		Body:        "We are hiring across warehouse operations and account management.",
	},
	{
		Path:        "/privacy-policy",
		Kind:        KindPage,
		Title:       "Privacy Policy",
		Description: "How TSG Fulfillment Services collects, uses and protects personal information.",
		Body:        "We collect only the information needed to respond to inquiries and fulfill orders.",
	},
	{
		Path:        "/terms-of-service",
		Kind:        KindPage,
		Title:       "Terms of Service",
		Description: "Terms governing the use of the TSG Fulfillment Services website.",
		Body:        "Use of this website is subject to the following terms.",
	},
	{
		Path:        "/thank-you",
		Kind:        KindPage,
		Title:       "Thank You",
		Description: "Your request has been received.",
		NoIndex:     true,
		Body:        "Thanks for reaching out. A member of our team will contact you shortly.",
	},
}

// Address is the primary fulfillment centre, used in the LocalBusiness schema.
var Address = seo.PostalAddress{
	Street:     "6750 Langstaff Road",
	Locality:   "Vaughan",
	Region:     "ON",
	PostalCode: "L4H 5K2",
	Country:    "CA",
}

// Telephone is the main sales line.
const Telephone = "+1-289-815-5869"
