package templates

const ResultTemplate = `
<!DOCTYPE html>
<html>
<head>
    <title>Lead Results - {{.Domain}}</title>
    <link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
</head>
<body class="bg-gray-100 p-8">
    <div class="max-w-4xl mx-auto">
        <h1 class="text-3xl font-bold mb-2">Leads for {{.Domain}}</h1>
        <p class="text-gray-600 mb-8">{{len .Leads}} active domain(s) sharing this SLD</p>

        {{if .Leads}}
        <table class="w-full bg-white rounded shadow">
            <thead>
                <tr class="text-left border-b">
                    <th class="p-3">Domain</th>
                    <th class="p-3">Tier</th>
                    <th class="p-3">Category</th>
                    <th class="p-3">Copyright</th>
                    <th class="p-3">Title</th>
                </tr>
            </thead>
            <tbody>
                {{range .Leads}}
                <tr class="border-b">
                    <td class="p-3"><a href="{{.URL}}" class="text-blue-600 underline" rel="noreferrer">{{.Domain}}</a></td>
                    <td class="p-3">
                        {{if eq .LeadType "High"}}<span class="bg-green-100 text-green-800 px-2 py-1 rounded">High</span>
                        {{else if eq .LeadType "Medium"}}<span class="bg-yellow-100 text-yellow-800 px-2 py-1 rounded">Medium</span>
                        {{else}}<span class="bg-gray-100 text-gray-800 px-2 py-1 rounded">Low</span>{{end}}
                    </td>
                    <td class="p-3">{{.Category}}</td>
                    <td class="p-3">{{.CopyrightYear}}</td>
                    <td class="p-3 text-gray-600">{{.Title}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>
        {{else}}
        <div class="bg-white rounded shadow p-6 text-gray-600">
            No active same-SLD domains found.
        </div>
        {{end}}

        <p class="mt-8"><a href="/" class="text-blue-600 underline">← Back</a></p>
    </div>
</body>
</html>
`
