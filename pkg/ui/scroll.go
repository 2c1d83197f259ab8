package ui

// ScrollTopOffset is the offset past which a back-to-top control shows.
const ScrollTopOffset = 300

func ScrollTopVisible(offset int) bool {
	return offset > ScrollTopOffset
}
