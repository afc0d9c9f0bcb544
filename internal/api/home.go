// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package api

import (
	"net/http"

	"github.com/miigaik/vestnik/internal/catalog/article"
	"github.com/miigaik/vestnik/internal/catalog/info"
	"github.com/miigaik/vestnik/internal/catalog/issue"
	"github.com/miigaik/vestnik/internal/platform/constants"
	"github.com/miigaik/vestnik/internal/platform/respond"
)

// homePayload is the landing-page aggregate: everything the front page
// needs in a single request.
type homePayload struct {
	Journal        *info.JournalInfo  `json:"journal"`
	CurrentIssue   *issue.Issue       `json:"current_issue"`
	RecentArticles []*article.Article `json:"recent_articles"`
}

// NewHomeHandler builds the GET /api/v1/ handler from the three services
// whose data the landing page composes.
func NewHomeHandler(infoService *info.Service, issueService *issue.Service, articleService *article.Service) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		journal, err := infoService.Get(ctx)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		current, err := issueService.CurrentIssue(ctx)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		recent, err := articleService.RecentPublished(ctx, constants.RecentArticlesLimit)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, homePayload{
			Journal:        journal,
			CurrentIssue:   current,
			RecentArticles: recent,
		})
	}
}
