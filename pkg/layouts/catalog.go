package layouts

import (
	"strconv"

	"github.com/matzehuels/slidekit/pkg/schema"
)

func imageCaptionColumn(n int) string {
	return column(placeholder(), heading(3, "Caption "+strconv.Itoa(n)), paragraph("Description"))
}

var textLayouts = []Layout{
	{
		ID: "title", Name: "Title",
		Description: "A title heading with a description paragraph below",
		Content:     wrap(heading(1, "Slide Title"), paragraph("Add your description or subtitle here")),
	},
	{
		ID: "title-only", Name: "Title Only",
		Description: "A single prominent title heading",
		Content:     heading(1, "Slide Title"),
	},
	{
		ID: "content", Name: "Content",
		Description: "A title with multiple paragraphs below",
		Content: wrap(
			heading(1, "Content Title"),
			paragraph("First paragraph of content. Add your main points here."),
			paragraph("Second paragraph with additional details or supporting information."),
		),
	},
	{
		ID: "two-column", Name: "Two Columns",
		Description: "A title with two equal columns below",
		Content: wrap(
			heading(1, "Section Title"),
			row(
				column(heading(2, "Column 1"), paragraph("Add content for the first column here")),
				column(heading(2, "Column 2"), paragraph("Add content for the second column here")),
			),
		),
	},
	{
		ID: "two-column-text", Name: "Two Column Text",
		Description: "A title with two text columns (no column headings)",
		Content: wrap(
			heading(1, "Section Title"),
			row(
				column(paragraph("Left column content. Add your text here for the left side of the slide.")),
				column(paragraph("Right column content. Add your text here for the right side of the slide.")),
			),
		),
	},
	{
		ID: "three-column", Name: "Three Columns",
		Description: "A title with three equal columns below",
		Content: wrap(
			heading(1, "Section Title"),
			row(
				column(heading(2, "Column 1"), paragraph("First column content")),
				column(heading(2, "Column 2"), paragraph("Second column content")),
				column(heading(2, "Column 3"), paragraph("Third column content")),
			),
		),
	},
	{
		ID: "four-column", Name: "Four Columns",
		Description: "A title with four equal columns below (maximum)",
		Content: wrap(
			heading(1, "Section Title"),
			row(
				column(heading(3, "Point 1"), paragraph("Description")),
				column(heading(3, "Point 2"), paragraph("Description")),
				column(heading(3, "Point 3"), paragraph("Description")),
				column(heading(3, "Point 4"), paragraph("Description")),
			),
		),
	},
	{
		ID: "sidebar", Name: "Content with Sidebar",
		Description: "Main content area with a sidebar column",
		Content: wrap(
			heading(1, "Main Topic"),
			row(
				column(
					heading(2, "Main Content"),
					paragraph("Primary content goes here. This is the main focus of the slide."),
					paragraph("Add additional paragraphs as needed for your content."),
				),
				column(heading(3, "Sidebar"), paragraph("Quick facts, notes, or supplementary information.")),
			),
		),
	},
	{
		ID: "section-header", Name: "Section Header",
		Description: "A section divider with title and subtitle",
		Content:     wrap(heading(3, "Section 01"), heading(1, "Section Title")),
	},
	{
		ID: "quote", Name: "Quote",
		Description: "A prominent quote with attribution",
		Content:     wrap(heading(2, `"Your inspiring quote goes here"`), paragraph("— Author Name")),
	},
	{
		ID: "blank", Name: "Blank",
		Description: "An empty slide to start from scratch",
		Content:     emptyParagraph(),
	},
}

var listLayouts = []Layout{
	{
		ID: "bullet-list", Name: "Bullet List",
		Description: "A title with bullet points",
		Content: wrap(
			heading(1, "Key Points"),
			bulletList("First important point", "Second important point", "Third important point"),
		),
	},
	{
		ID: "numbered-list", Name: "Numbered List",
		Description: "A title with numbered steps",
		Content: wrap(
			heading(1, "Steps to Follow"),
			orderedList("First step in the process", "Second step in the process", "Third step in the process"),
		),
	},
	{
		ID: "two-column-list", Name: "Two Column List",
		Description: "Two columns with bullet lists",
		Content: wrap(
			heading(1, "Comparison"),
			row(
				column(heading(2, "Pros"), bulletList("Advantage one", "Advantage two", "Advantage three")),
				column(heading(2, "Cons"), bulletList("Disadvantage one", "Disadvantage two", "Disadvantage three")),
			),
		),
	},
	{
		ID: "content-with-list", Name: "Content with List",
		Description: "Paragraph text followed by bullet points",
		Content: wrap(
			heading(1, "Overview"),
			paragraph("Here is an introduction to the topic. This paragraph provides context for the points below."),
			bulletList("Supporting point one", "Supporting point two", "Supporting point three"),
		),
	},
	{
		ID: "image-and-list", Name: "Image and List",
		Description: "Image on left, bullet list on right",
		Content: row(
			column(placeholder()),
			column(heading(2, "Key Features"), bulletList("Feature one", "Feature two", "Feature three")),
		),
	},
	{
		ID: "agenda", Name: "Agenda",
		Description: "Meeting agenda or presentation outline",
		Content: wrap(
			heading(1, "Agenda"),
			orderedList(
				"Introduction and welcome",
				"Review of previous items",
				"Main discussion topic",
				"Action items and next steps",
				"Q&A and closing",
			),
		),
	},
}

var imageLayouts = []Layout{
	{
		ID: "image-and-text", Name: "Image and Text",
		Description: "Image on the left, text on the right",
		Content:     row(column(placeholder()), column(heading(2, "Title"), paragraph("Add your description here"))),
	},
	{
		ID: "text-and-image", Name: "Text and Image",
		Description: "Text on the left, image on the right",
		Content:     row(column(heading(2, "Title"), paragraph("Add your description here")), column(placeholder())),
	},
	{
		ID: "title-text-image", Name: "Title with Text and Image",
		Description: "A title with text on the left and image on the right",
		Content: wrap(
			heading(1, "Section Title"),
			row(
				column(paragraph("Add your main content here. This text will appear next to the image.")),
				column(placeholder()),
			),
		),
	},
	{
		ID: "two-image-columns", Name: "2 Image Columns",
		Description: "Title with two image-text columns",
		Content:     wrap(heading(1, "Section Title"), row(imageCaptionColumn(1), imageCaptionColumn(2))),
	},
	{
		ID: "three-image-columns", Name: "3 Image Columns",
		Description: "Title with three image-text columns",
		Content:     wrap(heading(1, "Section Title"), row(imageCaptionColumn(1), imageCaptionColumn(2), imageCaptionColumn(3))),
	},
	{
		ID: "four-image-columns", Name: "4 Image Columns",
		Description: "Title with four image-text columns",
		Content: wrap(heading(1, "Section Title"),
			row(imageCaptionColumn(1), imageCaptionColumn(2), imageCaptionColumn(3), imageCaptionColumn(4))),
	},
	{
		ID: "image-gallery", Name: "Image Gallery",
		Description: "Title with three images in a row",
		Content:     wrap(heading(1, "Gallery Title"), row(column(placeholder()), column(placeholder()), column(placeholder()))),
	},
}

var fullImageLayouts = []Layout{
	{
		ID: "image-top", Name: "Image Top",
		Description: "Full-width image at top with content below",
		Content:     wrap(image(schema.ImageLayoutFullTop), heading(2, "Title"), paragraph("Add your description here")),
	},
	{
		ID: "image-bottom", Name: "Image Bottom",
		Description: "Content at top with full-width image below",
		Content:     wrap(heading(2, "Title"), paragraph("Add your description here"), image(schema.ImageLayoutFullBottom)),
	},
	{
		ID: "full-image-left", Name: "Full Image Left",
		Description: "Full-height image on left, content on right",
		Content: wrap(
			image(schema.ImageLayoutFullLeft),
			heading(1, "Title"),
			paragraph("Add your main content here."),
			paragraph("Additional details can go in this paragraph."),
		),
	},
	{
		ID: "full-image-right", Name: "Full Image Right",
		Description: "Content on left, full-height image on right",
		Content: wrap(
			image(schema.ImageLayoutFullRight),
			heading(1, "Title"),
			paragraph("Add your main content here."),
			paragraph("Additional details can go in this paragraph."),
		),
	},
	{
		ID: "image-header", Name: "Image Header",
		Description: "Full-width image header with title and columns",
		Content: wrap(
			image(schema.ImageLayoutFullTop),
			heading(1, "Section Title"),
			row(column(paragraph("Left column content")), column(paragraph("Right column content"))),
		),
	},
	{
		ID: "image-footer", Name: "Image Footer",
		Description: "Title and columns with full-width image footer",
		Content: wrap(
			heading(1, "Section Title"),
			row(column(paragraph("Left column content")), column(paragraph("Right column content"))),
			image(schema.ImageLayoutFullBottom),
		),
	},
}

var chartLayouts = []Layout{
	{
		ID: "line-chart", Name: "Line Chart",
		Description: "A title with a line chart",
		Content:     wrap(heading(1, "Performance Over Time"), chart(schema.ChartLine)),
	},
	{
		ID: "bar-chart", Name: "Bar Chart",
		Description: "A title with a bar chart",
		Content:     wrap(heading(1, "Category Breakdown"), chart(schema.ChartBar)),
	},
	{
		ID: "pie-chart", Name: "Pie Chart",
		Description: "A title with a pie chart",
		Content:     wrap(heading(1, "Share of Total"), chart(schema.ChartPie)),
	},
}

var categories = []Category{
	{ID: "text", Name: "Text Layouts", Layouts: textLayouts},
	{ID: "list", Name: "List Layouts", Layouts: listLayouts},
	{ID: "image", Name: "Image Layouts", Layouts: imageLayouts},
	{ID: "full-image", Name: "Full Image Layouts", Layouts: fullImageLayouts},
	{ID: "charts", Name: "Chart Layouts", Layouts: chartLayouts},
}
