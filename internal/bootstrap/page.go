// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"strconv"

	"github.com/AccelByte/extend-landing-promo/pkg/landing"
	"github.com/AccelByte/extend-landing-promo/pkg/page"
	"github.com/AccelByte/extend-landing-promo/pkg/timing"

	"github.com/sirupsen/logrus"
)

// InitDocument builds the page from the landing config.
//
// ============================================================
// DEVELOPER: Page elements
// ============================================================
// Elements are listed under page.elements in config/landing.yaml.
// Every behavior looks its element up by ID and quietly does
// nothing when the element is missing, so removing an element
// from the config is how a page opts out of a behavior.
// ============================================================
func InitDocument(cfg *landing.Config, clock timing.Clock) *page.Document {
	doc := page.NewDocument()
	for _, el := range cfg.Page.Elements {
		doc.Register(el.ID, el.Classes...)
	}

	if year := doc.GetElementByID(page.FooterYearID); year != nil {
		year.SetText(strconv.Itoa(clock.Now().Year()))
	}

	logrus.Infof("registered %d page elements", len(cfg.Page.Elements))
	return doc
}
