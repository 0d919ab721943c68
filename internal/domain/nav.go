package domain

// NavItem is one entry of the navigation bar. Fragment is the in-page
// anchor the item pointed at before the sections became separate screens.
type NavItem struct {
	Label    string
	Fragment string
}

// NavItems is the navigation bar in display order.
var NavItems = []NavItem{
	{Label: "Home", Fragment: ""},
	{Label: "About Me", Fragment: "about"},
	{Label: "Skills", Fragment: "skills"},
	{Label: "Projects", Fragment: "projects"},
	{Label: "Experience", Fragment: "experience"},
}
