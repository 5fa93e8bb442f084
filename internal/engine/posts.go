package engine

import (
	"math"

	"github.com/google/uuid"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/geom"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// Classifier tunables. Vertex matching is coordinate equality within a
// small tolerance; two runs within angleTolerance of collinear share a
// line post instead of a corner post.
const (
	vertexEpsilon  = 0.01 // mm
	angleTolerance = 0.1  // rad
)

// incidentLines returns all lines with an endpoint at the vertex.
func incidentLines(vertex geom.Point, lines []model.Line) []model.Line {
	var out []model.Line
	for _, l := range lines {
		if l.A.Distance(vertex) <= vertexEpsilon || l.B.Distance(vertex) <= vertexEpsilon {
			out = append(out, l)
		}
	}
	return out
}

// farEndpoint returns the endpoint of l away from the vertex.
func farEndpoint(vertex geom.Point, l model.Line) geom.Point {
	if l.A.Distance(vertex) <= vertexEpsilon {
		return l.B
	}
	return l.A
}

// Classify determines the post category at a vertex from the full line
// graph and the set of gate attachments.
func Classify(vertex geom.Point, lines []model.Line, gates []model.Gate) model.PostCategory {
	incident := incidentLines(vertex, lines)

	gateLines := make(map[string]bool, len(gates))
	for _, g := range gates {
		gateLines[g.RunID] = true
	}
	for _, l := range incident {
		if l.GateID != "" || gateLines[l.ID] {
			return model.PostEnd
		}
	}
	if len(incident) <= 1 {
		return model.PostEnd
	}
	if len(incident) >= 3 {
		// T-junctions and crossings collapse to corner.
		return model.PostCorner
	}

	a1 := geom.DirectionAngle(vertex, farEndpoint(vertex, incident[0]))
	a2 := geom.DirectionAngle(vertex, farEndpoint(vertex, incident[1]))
	diff := geom.AngularDifference(a1, a2)
	if diff < angleTolerance || math.Abs(diff-math.Pi) < angleTolerance {
		return model.PostLine
	}
	return model.PostCorner
}

// GeneratePosts rebuilds the full post set from lines, gates, and the
// interior joint positions produced by allocation (run-local distances
// keyed by line ID). One post per unique endpoint position, deduplicated
// by coordinate, plus one line post per joint.
func GeneratePosts(lines []model.Line, gates []model.Gate, jointsPerLine map[string][]float64) []model.Post {
	var posts []model.Post
	var seen []geom.Point

	known := func(p geom.Point) bool {
		for _, q := range seen {
			if q.Distance(p) <= vertexEpsilon {
				return true
			}
		}
		return false
	}

	for _, l := range lines {
		for _, v := range []geom.Point{l.A, l.B} {
			if known(v) {
				continue
			}
			seen = append(seen, v)
			posts = append(posts, model.Post{
				ID:       uuid.New().String()[:8],
				Pos:      v,
				Category: Classify(v, lines, gates),
			})
		}
	}

	for _, l := range lines {
		joints := jointsPerLine[l.ID]
		if len(joints) == 0 || l.LengthMM <= 0 {
			continue
		}
		for _, d := range joints {
			t := d / l.LengthMM
			posts = append(posts, model.Post{
				ID:       uuid.New().String()[:8],
				Pos:      geom.Lerp(l.A, l.B, t),
				Category: model.PostLine,
			})
		}
	}

	return posts
}
