package html

// CSRFCookieName is the cookie the CSRF middleware issues and the form
// script below reads. Keep the two in sync.
const CSRFCookieName = "csrf_token"

// CSRFFormScript injects a hidden _csrf field into every POST form from the
// CSRF cookie.
func CSRFFormScript() string {
	return `<script>
(function () {
  function readToken() {
    var parts = document.cookie ? document.cookie.split(";") : [];
    for (var i = 0; i < parts.length; i++) {
      var c = parts[i].trim();
      if (c.indexOf("` + CSRFCookieName + `=") === 0) {
        return decodeURIComponent(c.substring("` + CSRFCookieName + `".length + 1));
      }
    }
    return "";
  }

  function inject() {
    var token = readToken();
    if (!token) return;
    var forms = document.querySelectorAll("form[method=post], form[method=POST]");
    for (var i = 0; i < forms.length; i++) {
      if (forms[i].querySelector("input[name='_csrf']")) continue;
      var input = document.createElement("input");
      input.type = "hidden";
      input.name = "_csrf";
      input.value = token;
      forms[i].appendChild(input);
    }
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", inject);
  } else {
    inject();
  }
})();
</script>`
}
