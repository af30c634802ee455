package dispatch

import (
	"fmt"

	"github.com/SogeMoge/xwsbot/internal/clients/yasb"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/squad"
)

// Processing stages, recorded in the "stage" error meta
const (
	stageFetch   = "fetch"
	stageResolve = "resolve"
	stageSend    = "send"
)

// noticeFor picks the user-facing text for a failed request. An empty result
// means nothing should be sent.
func noticeFor(err error, mention string) string {
	if errors.IsCanceled(err) {
		return ""
	}

	stage, _ := errors.GetMeta(err)["stage"].(string)
	switch {
	case stage == stageFetch && yasb.IsFetchFailure(err):
		return fmt.Sprintf("Sorry %s, I couldn't retrieve list data.", mention)
	case stage == stageFetch && yasb.IsParseFailure(err):
		return fmt.Sprintf("Sorry %s, I couldn't understand the list format.", mention)
	case stage == stageResolve && errors.IsFailedPrecondition(err):
		switch errors.GetMeta(err)["missing"] {
		case squad.MissingFaction:
			return fmt.Sprintf("Sorry %s, list data incomplete (missing faction).", mention)
		case squad.MissingPilots:
			return fmt.Sprintf("The list appears to be empty, %s.", mention)
		}
	}
	return genericNotice(mention)
}

func genericNotice(mention string) string {
	return fmt.Sprintf("Sorry %s, an unexpected error occurred.", mention)
}

func confirmText(displayName string) string {
	return fmt.Sprintf("Query for %s:  Delete original message containing the YASB link?", displayName)
}
