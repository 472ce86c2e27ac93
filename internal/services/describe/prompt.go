package describe

// descriptionPrompt constrains the model to the single-field schema the
// pipeline embeds into the markup.
const descriptionPrompt = `You are captioning a vector illustration for an accessible content catalog.

Look at the attached image and respond with JSON only, using exactly this schema:

{"description": "<text>"}

Rules:
- 1-2 sentences describing the main subject and what it is doing.
- Plain language suitable as an accessibility caption.
- Do not mention that the image is an SVG, vector graphic, or illustration style.
- No markdown, no extra fields, no surrounding prose.`
