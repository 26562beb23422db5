package main

import (
	"payment-checkout-tui/styles"
)

// -------------------- THEME (Lip Gloss) --------------------
// Styles come from the styles package

var (
	cBg      = styles.CBg
	cPanel   = styles.CPanel
	cBorder  = styles.CBorder
	cMuted   = styles.CMuted
	cText    = styles.CText
	cAccent  = styles.CAccent
	cAccent2 = styles.CAccent2
	cWarn    = styles.CWarn

	appStyle   = styles.AppStyle
	titleStyle = styles.TitleStyle
	panelStyle = styles.PanelStyle
	navStyle   = styles.NavStyle
)
