package styles

import "github.com/jonathan/resume-builder/internal/types"

// base builds the shared style set every template starts from
func base(name string, meta types.TemplateMetadata) (*StyleSet, types.TemplateMetadata) {
	m := meta.WithDefaults()
	primary, secondary := m.PrimaryColor(), m.SecondaryColor()

	nameFam, nameStyle := CoreFamily(m.Fonts.Name.Family)
	headFam, headStyle := CoreFamily(m.Fonts.Heading.Family)
	bodyFam, bodyStyle := CoreFamily(m.Fonts.Normal.Family)
	normal := m.Fonts.Normal.Size

	body := ParagraphStyle{
		Name:       "Body",
		FontFamily: bodyFam,
		FontStyle:  bodyStyle,
		FontSize:   normal,
		Leading:    normal * 1.35,
		TextColor:  secondary,
		SpaceAfter: 4,
		Align:      AlignLeft,
	}

	bullet := body
	bullet.Name = "Bullet"
	bullet.LeftIndent = 12
	bullet.SpaceAfter = 1.5

	heading := ParagraphStyle{
		Name:        "SectionHeading",
		FontFamily:  headFam,
		FontStyle:   headStyle,
		FontSize:    m.Fonts.Heading.Size,
		Leading:     m.Fonts.Heading.Size * 1.25,
		TextColor:   primary,
		SpaceBefore: 10,
		SpaceAfter:  4,
		Align:       AlignLeft,
	}

	sidebarHeading := heading
	sidebarHeading.Name = "SidebarHeading"

	sidebarBody := body
	sidebarBody.Name = "SidebarBody"

	return &StyleSet{
		Name: name,
		Title: ParagraphStyle{
			Name:       "Title",
			FontFamily: nameFam,
			FontStyle:  nameStyle,
			FontSize:   m.Fonts.Name.Size,
			Leading:    m.Fonts.Name.Size * 1.2,
			TextColor:  primary,
			SpaceAfter: 4,
			Align:      AlignLeft,
		},
		Contact: ParagraphStyle{
			Name:       "Contact",
			FontFamily: bodyFam,
			FontStyle:  bodyStyle,
			FontSize:   normal,
			Leading:    normal * 1.3,
			TextColor:  secondary,
			SpaceAfter: 2,
			Align:      AlignLeft,
		},
		SectionHeading: heading,
		ItemTitle: ParagraphStyle{
			Name:        "ItemTitle",
			FontFamily:  headFam,
			FontStyle:   mergeStyle(headStyle, "B"),
			FontSize:    normal + 1,
			Leading:     (normal + 1) * 1.3,
			TextColor:   secondary,
			SpaceBefore: 2,
			Align:       AlignLeft,
		},
		ItemInfo: ParagraphStyle{
			Name:       "ItemInfo",
			FontFamily: bodyFam,
			FontStyle:  mergeStyle(bodyStyle, "I"),
			FontSize:   normal - 0.5,
			Leading:    (normal - 0.5) * 1.3,
			TextColor:  secondary,
			SpaceAfter: 3,
			Align:      AlignLeft,
		},
		Body:           body,
		Bullet:         bullet,
		SidebarHeading: sidebarHeading,
		SidebarBody:    sidebarBody,
	}, m
}

// Classic is a centered, single-column serif style
func Classic(meta types.TemplateMetadata) *StyleSet {
	s, _ := base("classic", meta)
	s.Title.Align = AlignCenter
	s.Contact.Align = AlignCenter
	s.SectionHeading.SpaceBefore = 12
	return s
}

// Modern is a left-aligned two-column style with a compact right column
func Modern(meta types.TemplateMetadata) *StyleSet {
	s, m := base("modern", meta)
	s.Contact.TextColor = m.PrimaryColor()

	s.SidebarHeading.FontSize = m.Fonts.Heading.Size - 2
	s.SidebarHeading.Leading = s.SidebarHeading.FontSize * 1.25
	s.SidebarHeading.SpaceBefore = 6

	s.SidebarBody.FontSize = m.Fonts.Normal.Size - 1
	s.SidebarBody.Leading = s.SidebarBody.FontSize * 1.35
	s.SidebarBody.LeftIndent = 8
	s.SidebarBody.SpaceAfter = 1.5
	return s
}

// Minimal is a sidebar style with light headings and tight spacing
func Minimal(meta types.TemplateMetadata) *StyleSet {
	s, m := base("minimal", meta)
	s.Title.FontSize = m.Fonts.Name.Size * 0.85
	s.Title.Leading = s.Title.FontSize * 1.2
	s.SectionHeading.SpaceBefore = 8
	s.SectionHeading.TextColor = m.SecondaryColor()

	s.SidebarHeading.FontSize = m.Fonts.Normal.Size + 1
	s.SidebarHeading.Leading = s.SidebarHeading.FontSize * 1.3
	s.SidebarHeading.SpaceBefore = 8

	s.SidebarBody.FontSize = m.Fonts.Normal.Size - 1
	s.SidebarBody.Leading = s.SidebarBody.FontSize * 1.35
	s.SidebarBody.LeftIndent = 8
	s.SidebarBody.SpaceAfter = 1.5
	return s
}
