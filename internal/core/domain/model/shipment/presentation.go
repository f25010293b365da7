package shipment

// ColorTag names the badge color used for a status.
type ColorTag string

const (
	ColorGreen  ColorTag = "green"
	ColorYellow ColorTag = "yellow"
	ColorBlue   ColorTag = "blue"
	ColorRed    ColorTag = "red"
	ColorGray   ColorTag = "gray"
)

// Presentation is the display metadata of a status badge.
type Presentation struct {
	ColorTag ColorTag
	Label    string
	CSSClass string
}

func colorTags() map[Status]ColorTag {
	//nolint:exhaustive // Created intentionally uses the default style
	return map[Status]ColorTag{
		Delivered: ColorGreen,
		InTransit: ColorYellow,
		PickedUp:  ColorBlue,
		Cancelled: ColorRed,
	}
}

func cssClasses() map[ColorTag]string {
	return map[ColorTag]string{
		ColorGreen:  "bg-green-500/10 text-green-400 border-green-500/20",
		ColorYellow: "bg-yellow-500/10 text-yellow-500 border-yellow-500/20",
		ColorBlue:   "bg-blue-500/10 text-blue-400 border-blue-500/20",
		ColorRed:    "bg-red-500/10 text-red-400 border-red-500/20",
		ColorGray:   "bg-gray-500/10 text-gray-400 border-gray-500/20",
	}
}

// PresentationOf maps a status to its badge. Unknown statuses get the gray
// default; the call never fails.
func PresentationOf(status Status) Presentation {
	tag, ok := colorTags()[status]
	if !ok {
		tag = ColorGray
	}
	return Presentation{
		ColorTag: tag,
		Label:    status.Label(),
		CSSClass: cssClasses()[tag],
	}
}
