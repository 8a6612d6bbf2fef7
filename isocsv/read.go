package isocsv

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/isochrone/graph"
)

var requiredColumns = []string{"id", "source", "target", "cost", "reverse_cost", "length", "geometry"}

// Read parses every data row of r into a graph.EdgeInput, in file order.
func Read(r io.Reader) ([]graph.EdgeInput, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("isocsv: reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("isocsv: column %q: %w", name, ErrMissingColumn)
		}
	}

	var edges []graph.EdgeInput
	for rowNum := 2; ; rowNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("isocsv: row %d: %w", rowNum, err)
		}
		edge, err := parseRow(record, col)
		if err != nil {
			return nil, fmt.Errorf("isocsv: row %d: %w", rowNum, err)
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

func parseRow(record []string, col map[string]int) (graph.EdgeInput, error) {
	id, err := strconv.ParseInt(record[col["id"]], 10, 64)
	if err != nil {
		return graph.EdgeInput{}, fmt.Errorf("id: %w", err)
	}
	source, err := strconv.ParseInt(record[col["source"]], 10, 64)
	if err != nil {
		return graph.EdgeInput{}, fmt.Errorf("source: %w", err)
	}
	target, err := strconv.ParseInt(record[col["target"]], 10, 64)
	if err != nil {
		return graph.EdgeInput{}, fmt.Errorf("target: %w", err)
	}
	cost, err := strconv.ParseFloat(record[col["cost"]], 64)
	if err != nil {
		return graph.EdgeInput{}, fmt.Errorf("cost: %w", err)
	}
	reverseCost, err := strconv.ParseFloat(record[col["reverse_cost"]], 64)
	if err != nil {
		return graph.EdgeInput{}, fmt.Errorf("reverse_cost: %w", err)
	}
	length, err := strconv.ParseFloat(record[col["length"]], 64)
	if err != nil {
		return graph.EdgeInput{}, fmt.Errorf("length: %w", err)
	}

	var rawGeom [][2]float64
	if err := json.Unmarshal([]byte(record[col["geometry"]]), &rawGeom); err != nil {
		return graph.EdgeInput{}, fmt.Errorf("geometry: %w", err)
	}
	geometry := make([]graph.Point, len(rawGeom))
	for i, xy := range rawGeom {
		geometry[i] = graph.Point{X: xy[0], Y: xy[1]}
	}

	return graph.EdgeInput{
		ID:          id,
		Source:      source,
		Target:      target,
		Cost:        cost,
		ReverseCost: reverseCost,
		Length:      length,
		Geometry:    geometry,
	}, nil
}
