package segment

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Video Segmenter</title><link rel="stylesheet" href="/style.css"></head>
<body>
  <h1>Video Segmenter Server</h1>
  <form action="/upload-and-process" method="post" enctype="multipart/form-data">
    <label for="video">Choose a video to segment:</label>
    <input type="file" id="video" name="video" accept="video/*" required>
    <button type="submit">Upload and segment</button>
  </form>
</body>
</html>
`))

type resultPage struct {
	Title string
	URL   string
}

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title><link rel="stylesheet" href="/style.css"></head>
<body>
  <h1>{{.Title}}</h1>
  <p>Segmented video URL: <a href="{{.URL}}">{{.URL}}</a></p>
  <video controls>
    <source src="{{.URL}}" type="video/mp4">
    Your browser does not support the video tag.
  </video>
  <p><a href="/">Back to the form</a></p>
</body>
</html>
`))
