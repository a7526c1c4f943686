package render

// The viewer templates below produce standalone Python/Tkinter scripts. The
// quiz payload is embedded between the payload markers as pretty-printed JSON
// inside a raw triple-quoted string, so the artifact stays valid Python for
// arbitrary quiz text and remains machine-extractable via --extract.

const payloadBeginMarker = "# ==== QUIZNOTE PAYLOAD BEGIN ===="
const payloadEndMarker = "# ==== QUIZNOTE PAYLOAD END ===="

// minimalViewerTemplate renders and grades a quiz locally, with no
// note-taking affordances.
const minimalViewerTemplate = `#!/usr/bin/env python3
# Generated by QuizNote. Self-contained quiz viewer: run it any time with a
# local Python 3 + Tkinter install. Run with --extract to print the payload.
import json
import sys

# ==== QUIZNOTE PAYLOAD BEGIN ====
QUIZ_DATA = json.loads(r"""
{{.PayloadJSON}}
""")
# ==== QUIZNOTE PAYLOAD END ====

if "--extract" in sys.argv:
    print(json.dumps(QUIZ_DATA, ensure_ascii=False))
    sys.exit(0)

import tkinter as tk
from tkinter import ttk, messagebox


class QuizWindow:
    def __init__(self, quiz):
        self.quiz = quiz
        self.answered = False
        self.selected = tk.IntVar(value=-1)

        self.root = tk.Tk()
        self.root.title("Quiz - " + quiz.get("category", "QuizNote"))
        self.root.configure(bg="#f5f7fa")
        self._center(750, 650)
        self._build_ui()

        self.root.lift()
        self.root.attributes("-topmost", True)
        self.root.after(100, lambda: self.root.attributes("-topmost", False))
        self.root.mainloop()

    def _center(self, width, height):
        self.root.update_idletasks()
        x = (self.root.winfo_screenwidth() // 2) - (width // 2)
        y = (self.root.winfo_screenheight() // 2) - (height // 2)
        self.root.geometry(f"{width}x{height}+{x}+{y}")

    def _build_ui(self):
        main = ttk.Frame(self.root, padding="25")
        main.pack(fill=tk.BOTH, expand=True)

        category = self.quiz.get("category", "")
        if category:
            ttk.Label(main, text="Category: " + category,
                      foreground="#666").pack(anchor=tk.W)

        ttk.Label(main, text="Question", font=("TkDefaultFont", 13, "bold")
                  ).pack(anchor=tk.W, pady=(15, 8))
        question = tk.Text(main, height=5, wrap=tk.WORD, bg="white",
                           relief=tk.FLAT, padx=12, pady=12,
                           highlightthickness=1, highlightbackground="#ddd")
        question.insert("1.0", self.quiz["question"])
        question.config(state=tk.DISABLED)
        question.pack(fill=tk.X, pady=(0, 20))

        options = ttk.LabelFrame(main, text="Options", padding="15")
        options.pack(fill=tk.X, pady=(0, 20))

        self.option_buttons = []
        for i, option in enumerate(self.quiz["options"]):
            btn = tk.Radiobutton(options, text=f"{chr(65 + i)}. {option}",
                                 variable=self.selected, value=i,
                                 bg="#f5f7fa", activebackground="#e3f2fd",
                                 highlightthickness=0,
                                 command=self._on_select)
            btn.pack(anchor=tk.W, pady=6, fill=tk.X)
            self.option_buttons.append(btn)

        self.submit_btn = ttk.Button(main, text="Submit answer",
                                     command=self.submit, state=tk.DISABLED)
        self.submit_btn.pack(pady=10)

        result = ttk.LabelFrame(main, text="Explanation", padding="15")
        result.pack(fill=tk.BOTH, expand=True, pady=(10, 0))
        self.result_label = ttk.Label(
            result, text="Pick an option and submit to see the answer.",
            wraplength=650)
        self.result_label.pack(anchor=tk.W)
        self.knowledge_label = ttk.Label(result, text="", wraplength=650,
                                         foreground="#2196F3")
        self.knowledge_label.pack(anchor=tk.W, pady=(15, 0))

    def _on_select(self):
        if not self.answered:
            self.submit_btn.config(state=tk.NORMAL)

    def submit(self):
        if self.answered:
            return
        selected = self.selected.get()
        if selected < 0:
            messagebox.showwarning("QuizNote", "Please pick an option first.")
            return

        self.answered = True
        correct = self.quiz["correctIndex"]

        for i, btn in enumerate(self.option_buttons):
            if i == correct:
                btn.config(fg="#4CAF50", font=("TkDefaultFont", 10, "bold"))
            elif i == selected:
                btn.config(fg="#f44336", font=("TkDefaultFont", 10, "bold"))

        explanation = self.quiz.get("explanation", "")
        if selected == correct:
            self.result_label.config(text="Correct!\n\n" + explanation)
        else:
            answer = self.quiz["options"][correct]
            self.result_label.config(
                text=f"Incorrect.\n\nThe correct answer is {chr(65 + correct)}. "
                     f"{answer}\n\n{explanation}")
            knowledge = self.quiz.get("knowledgeSummary", "")
            if knowledge:
                points = [p.strip() for p in knowledge.split("|") if p.strip()]
                self.knowledge_label.config(
                    text="Key points:\n" + "\n".join("  - " + p for p in points))

        self.submit_btn.config(text="Submitted", state=tk.DISABLED)


if __name__ == "__main__":
    QuizWindow(QUIZ_DATA)
`

// notebookViewerTemplate extends the minimal layout with a note box and a
// save-to-notebook affordance that appends a Markdown note into the
// configured notebook directory.
const notebookViewerTemplate = `#!/usr/bin/env python3
# Generated by QuizNote. Self-contained quiz viewer with notebook export:
# run it any time with a local Python 3 + Tkinter install. Run with
# --extract to print the payload.
import json
import os
import sys
from datetime import datetime

# ==== QUIZNOTE PAYLOAD BEGIN ====
QUIZ_DATA = json.loads(r"""
{{.PayloadJSON}}
""")
# ==== QUIZNOTE PAYLOAD END ====

NOTEBOOK_PATH = r"""{{.NotebookPath}}""".strip()

if "--extract" in sys.argv:
    print(json.dumps(QUIZ_DATA, ensure_ascii=False))
    sys.exit(0)

import tkinter as tk
from tkinter import ttk, messagebox


class QuizWindow:
    def __init__(self, quiz):
        self.quiz = quiz
        self.answered = False
        self.selected = tk.IntVar(value=-1)

        self.root = tk.Tk()
        self.root.title("Quiz - " + quiz.get("category", "QuizNote"))
        self.root.configure(bg="#f5f7fa")
        self._center(780, 760)
        self._build_ui()

        self.root.lift()
        self.root.attributes("-topmost", True)
        self.root.after(100, lambda: self.root.attributes("-topmost", False))
        self.root.mainloop()

    def _center(self, width, height):
        self.root.update_idletasks()
        x = (self.root.winfo_screenwidth() // 2) - (width // 2)
        y = (self.root.winfo_screenheight() // 2) - (height // 2)
        self.root.geometry(f"{width}x{height}+{x}+{y}")

    def _build_ui(self):
        main = ttk.Frame(self.root, padding="25")
        main.pack(fill=tk.BOTH, expand=True)

        category = self.quiz.get("category", "")
        if category:
            ttk.Label(main, text="Category: " + category,
                      foreground="#666").pack(anchor=tk.W)

        ttk.Label(main, text="Question", font=("TkDefaultFont", 13, "bold")
                  ).pack(anchor=tk.W, pady=(15, 8))
        question = tk.Text(main, height=4, wrap=tk.WORD, bg="white",
                           relief=tk.FLAT, padx=12, pady=12,
                           highlightthickness=1, highlightbackground="#ddd")
        question.insert("1.0", self.quiz["question"])
        question.config(state=tk.DISABLED)
        question.pack(fill=tk.X, pady=(0, 16))

        options = ttk.LabelFrame(main, text="Options", padding="15")
        options.pack(fill=tk.X, pady=(0, 16))

        self.option_buttons = []
        for i, option in enumerate(self.quiz["options"]):
            btn = tk.Radiobutton(options, text=f"{chr(65 + i)}. {option}",
                                 variable=self.selected, value=i,
                                 bg="#f5f7fa", activebackground="#e3f2fd",
                                 highlightthickness=0,
                                 command=self._on_select)
            btn.pack(anchor=tk.W, pady=5, fill=tk.X)
            self.option_buttons.append(btn)

        buttons = ttk.Frame(main)
        buttons.pack(pady=8)
        self.submit_btn = ttk.Button(buttons, text="Submit answer",
                                     command=self.submit, state=tk.DISABLED)
        self.submit_btn.pack(side=tk.LEFT, padx=4)
        self.save_btn = ttk.Button(buttons, text="Save to notebook",
                                   command=self.save_note, state=tk.DISABLED)
        self.save_btn.pack(side=tk.LEFT, padx=4)

        result = ttk.LabelFrame(main, text="Explanation", padding="15")
        result.pack(fill=tk.X, pady=(8, 0))
        self.result_label = ttk.Label(
            result, text="Pick an option and submit to see the answer.",
            wraplength=680)
        self.result_label.pack(anchor=tk.W)
        self.knowledge_label = ttk.Label(result, text="", wraplength=680,
                                         foreground="#2196F3")
        self.knowledge_label.pack(anchor=tk.W, pady=(10, 0))

        notes = ttk.LabelFrame(main, text="My notes", padding="10")
        notes.pack(fill=tk.BOTH, expand=True, pady=(12, 0))
        self.notes_text = tk.Text(notes, height=4, wrap=tk.WORD, bg="white",
                                  relief=tk.FLAT, padx=8, pady=8,
                                  highlightthickness=1,
                                  highlightbackground="#ddd")
        self.notes_text.pack(fill=tk.BOTH, expand=True)

    def _on_select(self):
        if not self.answered:
            self.submit_btn.config(state=tk.NORMAL)

    def submit(self):
        if self.answered:
            return
        selected = self.selected.get()
        if selected < 0:
            messagebox.showwarning("QuizNote", "Please pick an option first.")
            return

        self.answered = True
        correct = self.quiz["correctIndex"]

        for i, btn in enumerate(self.option_buttons):
            if i == correct:
                btn.config(fg="#4CAF50", font=("TkDefaultFont", 10, "bold"))
            elif i == selected:
                btn.config(fg="#f44336", font=("TkDefaultFont", 10, "bold"))

        explanation = self.quiz.get("explanation", "")
        if selected == correct:
            self.result_label.config(text="Correct!\n\n" + explanation)
        else:
            answer = self.quiz["options"][correct]
            self.result_label.config(
                text=f"Incorrect.\n\nThe correct answer is {chr(65 + correct)}. "
                     f"{answer}\n\n{explanation}")
            knowledge = self.quiz.get("knowledgeSummary", "")
            if knowledge:
                points = [p.strip() for p in knowledge.split("|") if p.strip()]
                self.knowledge_label.config(
                    text="Key points:\n" + "\n".join("  - " + p for p in points))

        self.submit_btn.config(text="Submitted", state=tk.DISABLED)
        if NOTEBOOK_PATH:
            self.save_btn.config(state=tk.NORMAL)

    def save_note(self):
        if not NOTEBOOK_PATH:
            messagebox.showwarning("QuizNote", "No notebook path configured.")
            return
        try:
            os.makedirs(NOTEBOOK_PATH, exist_ok=True)
            correct = self.quiz["correctIndex"]
            stamp = datetime.now().strftime("%Y%m%d_%H%M%S")
            name = stamp + "_" + self.quiz.get("id", "quiz")[:8] + ".md"
            lines = [
                "# " + self.quiz.get("category", "Quiz note"),
                "",
                "**Question:** " + self.quiz["question"],
                "",
                "**Correct answer:** " + chr(65 + correct) + ". "
                + self.quiz["options"][correct],
                "",
                "**Explanation:** " + self.quiz.get("explanation", ""),
            ]
            knowledge = self.quiz.get("knowledgeSummary", "")
            if knowledge:
                lines += ["", "**Key points:**"]
                lines += ["- " + p.strip()
                          for p in knowledge.split("|") if p.strip()]
            own = self.notes_text.get("1.0", tk.END).strip()
            if own:
                lines += ["", "**My notes:**", "", own]
            path = os.path.join(NOTEBOOK_PATH, name)
            with open(path, "w", encoding="utf-8") as f:
                f.write("\n".join(lines) + "\n")
            messagebox.showinfo("QuizNote", "Note saved to " + path)
        except OSError as exc:
            messagebox.showerror("QuizNote", "Saving note failed: " + str(exc))


if __name__ == "__main__":
    QuizWindow(QUIZ_DATA)
`

// noteScriptTemplate produces a standalone Python/ReportLab script that lays
// out a notebook note as a PDF. It is executed awaited, so layout errors
// surface on stderr to the caller.
const noteScriptTemplate = `#!/usr/bin/env python3
# Generated by QuizNote. Renders one notebook note to PDF via ReportLab.
import json
import sys

NOTE = json.loads(r"""
{{.PayloadJSON}}
""")

OUTPUT_PATH = r"""{{.OutputPath}}""".strip()

from reportlab.graphics.charts.barcharts import VerticalBarChart
from reportlab.graphics.shapes import Drawing
from reportlab.lib import colors
from reportlab.lib.pagesizes import A4
from reportlab.lib.styles import getSampleStyleSheet
from reportlab.lib.units import cm
from reportlab.platypus import (Paragraph, SimpleDocTemplate, Spacer, Table,
                                TableStyle)


def build():
    styles = getSampleStyleSheet()
    story = [Paragraph(NOTE["topic"], styles["Title"]), Spacer(1, 0.4 * cm)]

    for section in NOTE.get("sections", []) or []:
        story.append(Paragraph(section["heading"], styles["Heading2"]))
        for para in section["body"].split("\n\n"):
            if para.strip():
                story.append(Paragraph(para.strip(), styles["BodyText"]))
        story.append(Spacer(1, 0.3 * cm))

    points = NOTE.get("keyPoints") or []
    if points:
        story.append(Paragraph("Key points", styles["Heading2"]))
        for point in points:
            story.append(Paragraph("• " + point, styles["BodyText"]))
        story.append(Spacer(1, 0.3 * cm))

    table = NOTE.get("table")
    if table:
        data = [table["headers"]] + table["rows"]
        t = Table(data, hAlign="LEFT")
        t.setStyle(TableStyle([
            ("BACKGROUND", (0, 0), (-1, 0), colors.HexColor("#e3f2fd")),
            ("GRID", (0, 0), (-1, -1), 0.5, colors.grey),
            ("FONTNAME", (0, 0), (-1, 0), "Helvetica-Bold"),
            ("VALIGN", (0, 0), (-1, -1), "TOP"),
        ]))
        story.append(t)
        story.append(Spacer(1, 0.3 * cm))

    chart = NOTE.get("chart")
    if chart:
        if chart.get("title"):
            story.append(Paragraph(chart["title"], styles["Heading2"]))
        drawing = Drawing(400, 220)
        bars = VerticalBarChart()
        bars.x, bars.y = 40, 30
        bars.width, bars.height = 330, 160
        bars.data = [chart["values"]]
        bars.categoryAxis.categoryNames = chart["labels"]
        bars.valueAxis.valueMin = 0
        bars.bars[0].fillColor = colors.HexColor("#2196F3")
        drawing.add(bars)
        story.append(drawing)

    doc = SimpleDocTemplate(OUTPUT_PATH, pagesize=A4)
    doc.build(story)


if __name__ == "__main__":
    try:
        build()
    except Exception as exc:  # surface every failure on stderr
        print("pdf render failed: " + str(exc), file=sys.stderr)
        sys.exit(1)
    print(OUTPUT_PATH)
`
