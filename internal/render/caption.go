package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crochess/scenes/pkg/mix"
	"github.com/crochess/scenes/pkg/scene"
)

// Caption returns human readable title of a scene,
// e.g. "Croatian Ties: Ct 01 Pegasus Open Board".
func Caption(sc *scene.Scene) string {
	var name = sc.FileName
	if name == "" {
		name = sc.Name
	}
	name = strings.TrimPrefix(name, mix.BookScenePrefix)
	var words = strings.Fields(strings.ReplaceAll(name, "_", " "))
	var title = cases.Title(language.English).String(strings.Join(words, " "))
	return sc.Board.Type.Name() + ": " + title
}
