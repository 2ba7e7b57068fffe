package cli

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// Maltego link property names.
const (
	linkLabel     = "link#maltego.link.label"
	linkColor     = "link#maltego.link.color"
	linkThickness = "link#maltego.link.thickness"
	linkStyle     = "link#maltego.link.style"
	linkDirection = "link#maltego.link.direction"
	noteField     = "notes#"

	directionReversed = "output-to-input"
	defaultWeight     = 100
)

type maltegoMessage struct {
	XMLName  xml.Name        `xml:"MaltegoMessage"`
	Response maltegoResponse `xml:"MaltegoTransformResponseMessage"`
}

type maltegoResponse struct {
	Entities   []maltegoEntity    `xml:"Entities>Entity"`
	UIMessages []maltegoUIMessage `xml:"UIMessages>UIMessage"`
}

type maltegoEntity struct {
	Type   string         `xml:"Type,attr"`
	Value  string         `xml:"Value"`
	Weight int            `xml:"Weight"`
	Fields []maltegoField `xml:"AdditionalFields>Field,omitempty"`
}

type maltegoField struct {
	Name         string `xml:"Name,attr"`
	DisplayName  string `xml:"DisplayName,attr,omitempty"`
	MatchingRule string `xml:"MatchingRule,attr"`
	Value        string `xml:",chardata"`
}

type maltegoUIMessage struct {
	Type string `xml:"MessageType,attr"`
	Text string `xml:",chardata"`
}

// renderMaltego writes the run as a Maltego transform response.
// Entities are written in emission order; Maltego merges them itself.
func renderMaltego(w io.Writer, sink *memory.GraphSink) error {
	var msg maltegoMessage
	for _, e := range sink.Entities() {
		msg.Response.Entities = append(msg.Response.Entities, maltegoEntityOf(e))
	}
	for _, m := range sink.Messages() {
		msg.Response.UIMessages = append(msg.Response.UIMessages, maltegoUIMessage{Type: string(m.Severity), Text: m.Text})
	}

	data, err := xml.MarshalIndent(msg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal maltego response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func maltegoEntityOf(e domain.Entity) maltegoEntity {
	out := maltegoEntity{Type: string(e.Kind), Value: e.Value, Weight: defaultWeight}
	for _, p := range e.Properties {
		out.Fields = append(out.Fields, maltegoField{
			Name:         p.Name,
			DisplayName:  p.DisplayName,
			MatchingRule: string(p.Matching),
			Value:        p.Value,
		})
	}

	loose := func(name, value string) {
		out.Fields = append(out.Fields, maltegoField{Name: name, DisplayName: name, MatchingRule: string(domain.MatchLoose), Value: value})
	}
	if e.Note != "" {
		loose(noteField, e.Note)
	}
	if e.Link.Label != "" {
		loose(linkLabel, e.Link.Label)
	}
	if e.Link.Color != "" {
		loose(linkColor, e.Link.Color)
	}
	if e.Link.Thickness > 0 {
		loose(linkThickness, strconv.Itoa(e.Link.Thickness))
	}
	if e.Link.Style != domain.LinkSolid {
		loose(linkStyle, strconv.Itoa(int(e.Link.Style)))
	}
	if e.Link.Reversed {
		loose(linkDirection, directionReversed)
	}
	return out
}
