package redirects

// Legacy lists the URLs of the previous PHP site and where their content lives now.
var Legacy = []Rule{
	{From: "/index.php", To: "/"},
	{From: "/home.php", To: "/"},
	{From: "/about.php", To: "/about"},
	{From: "/about-us.php", To: "/about"},
	{From: "/contact.php", To: "/contact"},
	{From: "/contact-us.php", To: "/contact"},
	{From: "/quote.php", To: "/quote"},
	{From: "/request-quote.php", To: "/quote"},
	{From: "/services.php", To: "/services"},
	{From: "/warehouse.php", To: "/services/warehousing-services"},
	{From: "/warehousing.php", To: "/services/warehousing-services"},
	{From: "/fulfillment.php", To: "/services/order-fulfillment"},
	{From: "/order-fulfillment.php", To: "/services/order-fulfillment"},
	{From: "/kitting.php", To: "/services/kitting-services"},
	{From: "/freight.php", To: "/services/freight-forwarding"},
	{From: "/transportation.php", To: "/services/freight-forwarding"},
	{From: "/returns.php", To: "/services/returns-processing"},
	{From: "/value-added-services.php", To: "/services/value-added-services"},
	{From: "/industries.php", To: "/industries"},
	{From: "/ecommerce.php", To: "/industries/ecommerce"},
	{From: "/retail.php", To: "/industries/retail"},
	{From: "/health-beauty.php", To: "/industries/health-and-beauty"},
	{From: "/locations.php", To: "/locations"},
	{From: "/careers.php", To: "/careers"},
	{From: "/privacy.php", To: "/privacy-policy"},
	{From: "/terms.php", To: "/terms-of-service"},
}
