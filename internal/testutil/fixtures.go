package testutil

// SampleHomepage is a minimal homepage with the cat picture element.
const SampleHomepage = `<!DOCTYPE html>
<html>
<head><title>Home</title></head>
<body>
<img id="cat-image" src="../static/img/Gary.jpg" alt="a cat">
<button id="shuffle-cats">Shuffle cats</button>
</body>
</html>`

// SampleConfigYAML sets every site.yaml field.
const SampleConfigYAML = `server:
  port: 8080
  shuffle_limit:
    max_attempts: 10
    window: 30s
cats:
  images:
    - one.jpg
    - two.jpg
  prefix: /static/img/
  element_id: hero
  placeholder: none.png
log:
  level: debug
`

// SampleImages returns a four-name cycle. Returns a new slice each time to
// prevent test interference.
func SampleImages() []string {
	return []string{"A.jpg", "B.jpg", "C.png", "D.jpg"}
}
